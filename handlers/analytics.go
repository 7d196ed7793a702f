package handlers

import (
	"log/slog"
	"net/http"

	"github.com/lavanya1309/techical-sales-web-application/middleware"
	"github.com/lavanya1309/techical-sales-web-application/store"
)

type AnalyticsHandler struct {
	store store.Store
}

func NewAnalyticsHandler(st store.Store) *AnalyticsHandler {
	return &AnalyticsHandler{store: st}
}

// Summary handles GET /api/analytics
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ReadAll(r.Context())
	if err != nil {
		slog.Error("failed to read records", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ComputeMetrics(records))
}
