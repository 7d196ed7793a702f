package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// Recognized store backends.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	Port         int
	DatabaseType string
	DatabaseURL  string
	MapsAPIKey   string
}

// HasGeocoding reports whether a geocoding credential is configured.
func (c Config) HasGeocoding() bool {
	return c.MapsAPIKey != ""
}

// ParseFlags validates flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("sales-dashboard", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Store backend (memory, sqlite or postgres)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite/postgres only)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.MapsAPIKey, "maps-key", "", "Google Maps API key (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = StoreMemory
		}
	}
	switch cfg.DatabaseType {
	case StoreMemory, StoreSQLite, StorePostgres:
	default:
		return Config{}, errors.New("DATABASE_TYPE must be memory, sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" && cfg.DatabaseType != StoreMemory {
		return Config{}, errors.New("database URL required for " + cfg.DatabaseType + " (use -d or DATABASE_URL env)")
	}

	// Geocoding credential is optional: without it the server falls back to
	// spreadsheet-supplied coordinates and the maps endpoints report no key.
	if cfg.MapsAPIKey == "" {
		cfg.MapsAPIKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	}
	if cfg.MapsAPIKey == "" {
		cfg.MapsAPIKey = os.Getenv("MAPS_API_KEY")
	}

	return cfg, nil
}
