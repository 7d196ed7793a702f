package handlers

import (
	"log/slog"
	"net/http"

	"github.com/lavanya1309/techical-sales-web-application/middleware"
	"github.com/lavanya1309/techical-sales-web-application/models"
	"github.com/lavanya1309/techical-sales-web-application/store"
)

type SalesHandler struct {
	store store.Store
}

func NewSalesHandler(st store.Store) *SalesHandler {
	return &SalesHandler{store: st}
}

// List handles GET /api/sales
func (h *SalesHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ReadAll(r.Context())
	if err != nil {
		slog.Error("failed to read records", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, records)
}

// Clear handles POST /api/clear
func (h *SalesHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(r.Context()); err != nil {
		slog.Error("failed to clear records", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("sales data cleared")

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "All sales data cleared successfully",
	})
}
