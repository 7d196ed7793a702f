package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/lavanya1309/techical-sales-web-application/ingest"
	"github.com/lavanya1309/techical-sales-web-application/middleware"
	"github.com/lavanya1309/techical-sales-web-application/models"
)

type UploadHandler struct {
	pipeline *ingest.Pipeline
}

func NewUploadHandler(pipeline *ingest.Pipeline) *UploadHandler {
	return &UploadHandler{pipeline: pipeline}
}

// Upload handles POST /api/upload
// Expects a multipart form with the spreadsheet under the "file" field.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Cap the whole request body; the extra headroom covers multipart framing
	r.Body = http.MaxBytesReader(w, r.Body, ingest.MaxUploadBytes+4096)

	file, header, err := r.FormFile("file")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		// An oversized body surfaces here as a MaxBytesReader error
		middleware.ErrorResponse(w, http.StatusBadRequest, ingest.ErrUnsupportedUpload.Error())
		return
	}

	result, err := h.pipeline.Ingest(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		switch {
		case errors.Is(err, ingest.ErrUnsupportedUpload), errors.Is(err, ingest.ErrNoValidRows):
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("ingestion failed", "file", header.Filename, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to process the Excel file")
		}
		return
	}

	slog.Info("file uploaded", "file", header.Filename, "count", len(result.Records), "skipped", result.Skipped)

	middleware.JSONResponse(w, http.StatusOK, models.UploadResponse{
		Message: "Data uploaded successfully",
		Count:   len(result.Records),
		Data:    result.Records,
	})
}
