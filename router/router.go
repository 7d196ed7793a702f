package router

import (
	"net/http"

	"github.com/lavanya1309/techical-sales-web-application/cliparse"
	"github.com/lavanya1309/techical-sales-web-application/geocode"
	"github.com/lavanya1309/techical-sales-web-application/handlers"
	"github.com/lavanya1309/techical-sales-web-application/ingest"
	"github.com/lavanya1309/techical-sales-web-application/middleware"
	"github.com/lavanya1309/techical-sales-web-application/store"
)

func NewRouter(st store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// The resolver stays nil without a credential; the pipeline then falls
	// back to spreadsheet-supplied coordinates. rowResolver is a separate
	// variable so the pipeline sees a nil interface, not a typed nil.
	var resolver *geocode.GoogleResolver
	var rowResolver geocode.Resolver
	if cfg.HasGeocoding() {
		resolver = geocode.NewGoogleResolver(cfg.MapsAPIKey)
		rowResolver = resolver
	}

	// Initialize handlers
	salesHandler := handlers.NewSalesHandler(st)
	uploadHandler := handlers.NewUploadHandler(ingest.NewPipeline(st, rowResolver))
	analyticsHandler := handlers.NewAnalyticsHandler(st)
	geocodeHandler := handlers.NewGeocodeHandler(cfg, resolver)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Sales data
	mux.HandleFunc("GET /api/sales", middleware.WithLogging(salesHandler.List))
	mux.HandleFunc("POST /api/upload", middleware.WithLogging(uploadHandler.Upload))
	mux.HandleFunc("POST /api/clear", middleware.WithLogging(salesHandler.Clear))

	// Analytics
	mux.HandleFunc("GET /api/analytics", middleware.WithLogging(analyticsHandler.Summary))

	// Maps and geocoding
	mux.HandleFunc("POST /api/geocode", middleware.WithLogging(geocodeHandler.Lookup))
	mux.HandleFunc("GET /api/maps-config", middleware.WithLogging(geocodeHandler.MapsConfig))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("sales-dashboard API v1"))
	})

	return mux
}
