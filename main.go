package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/lavanya1309/techical-sales-web-application/cliparse"
	"github.com/lavanya1309/techical-sales-web-application/middleware"
	"github.com/lavanya1309/techical-sales-web-application/router"
	"github.com/lavanya1309/techical-sales-web-application/store"
)

func main() {
	// Load .env if present; real env vars win
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded configuration from .env")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Select the record store backend
	recordStore, err := openStore(cfg)
	if err != nil {
		slog.Error("store initialization failed", "error", err)
		os.Exit(1)
	}

	// Each process starts from an empty snapshot
	if err := recordStore.Clear(context.Background()); err != nil {
		slog.Error("failed to clear store on startup", "error", err)
		os.Exit(1)
	}

	if cfg.HasGeocoding() {
		slog.Info("geocoding enabled")
	} else {
		slog.Info("no maps API key configured, using spreadsheet coordinates only")
	}

	// Create router
	mux := router.NewRouter(recordStore, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "store", cfg.DatabaseType)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openStore builds the configured store backend. SQLite and PostgreSQL share
// the same SQLStore; memory is the default.
func openStore(cfg cliparse.Config) (store.Store, error) {
	if cfg.DatabaseType == cliparse.StoreMemory {
		return store.NewMemoryStore(), nil
	}

	driver := "sqlite"
	if cfg.DatabaseType == cliparse.StorePostgres {
		driver = "postgres"
	}

	db, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if err := store.CreateSchema(db); err != nil {
		return nil, err
	}
	slog.Info("Database schema ready", "driver", driver)

	return store.NewSQLStore(db), nil
}
