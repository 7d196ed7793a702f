package handlers

import (
	"log/slog"
	"net/http"

	"github.com/lavanya1309/techical-sales-web-application/cliparse"
	"github.com/lavanya1309/techical-sales-web-application/geocode"
	"github.com/lavanya1309/techical-sales-web-application/middleware"
	"github.com/lavanya1309/techical-sales-web-application/models"
)

type GeocodeHandler struct {
	cfg cliparse.Config
	// resolver is nil when no geocoding credential is configured
	resolver *geocode.GoogleResolver
}

func NewGeocodeHandler(cfg cliparse.Config, resolver *geocode.GoogleResolver) *GeocodeHandler {
	return &GeocodeHandler{cfg: cfg, resolver: resolver}
}

// Lookup handles POST /api/geocode
// Proxies the address lookup and returns the geocoding service's JSON
// verbatim, so the frontend never sees the API key.
func (h *GeocodeHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var req models.GeocodeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Address == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "address is required")
		return
	}

	if h.resolver == nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Geocoding service not configured")
		return
	}

	body, err := h.resolver.RawLookup(r.Context(), req.Address)
	if err != nil {
		slog.Error("geocode proxy failed", "address", req.Address, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Geocoding request failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write geocode response", "error", err)
	}
}

// MapsConfig handles GET /api/maps-config
// Reports the maps API key, or null when geocoding is disabled.
func (h *GeocodeHandler) MapsConfig(w http.ResponseWriter, r *http.Request) {
	var key *string
	if h.cfg.HasGeocoding() {
		key = &h.cfg.MapsAPIKey
	}

	middleware.JSONResponse(w, http.StatusOK, models.MapsConfigResponse{APIKey: key})
}
