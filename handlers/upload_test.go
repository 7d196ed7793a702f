package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lavanya1309/techical-sales-web-application/ingest"
	"github.com/lavanya1309/techical-sales-web-application/models"
	"github.com/lavanya1309/techical-sales-web-application/store"
	"github.com/lavanya1309/techical-sales-web-application/testutil"
)

func uploadFixture(t *testing.T) []byte {
	t.Helper()
	return testutil.BuildWorkbook(t, [][]interface{}{
		{"State", "City", "2022", "2023", "2024", "2025", "Total", "Latitude", "Longitude"},
		{"Karnataka", "Bengaluru", 100, 110, 130, 150, "", 12.97, 77.59},
		{"Maharashtra", "Mumbai", 200, 190, 210, 220, "", 19.07, 72.87},
		{"", "Nowhere", 5, 5, 5, 5, "", 10.0, 10.0}, // rejected: missing state
	})
}

func TestUpload(t *testing.T) {
	st := store.NewMemoryStore()
	handler := NewUploadHandler(ingest.NewPipeline(st, nil))

	req := testutil.MultipartRequest(t, "/api/upload", "file", "sales.xlsx", uploadFixture(t))
	w := httptest.NewRecorder()
	handler.Upload(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.UploadResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Count != 2 {
		t.Errorf("expected count 2, got %d", resp.Count)
	}
	if len(resp.Data) != 2 {
		t.Errorf("expected 2 records in response, got %d", len(resp.Data))
	}
	if resp.Message != "Data uploaded successfully" {
		t.Errorf("unexpected message: %q", resp.Message)
	}

	stored, err := st.ReadAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 2 {
		t.Errorf("expected 2 records stored, got %d", len(stored))
	}
}

func TestUpload_ReplacesPriorSnapshot(t *testing.T) {
	st := testutil.SeedStore(t, testutil.SampleRecords())
	handler := NewUploadHandler(ingest.NewPipeline(st, nil))

	req := testutil.MultipartRequest(t, "/api/upload", "file", "sales.xlsx", uploadFixture(t))
	w := httptest.NewRecorder()
	handler.Upload(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	stored, err := st.ReadAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 2 {
		t.Fatalf("upload must replace the prior snapshot, got %d records", len(stored))
	}
	for _, rec := range stored {
		if rec.City == "Chennai" {
			t.Error("record from the prior snapshot survived the replace")
		}
	}
}

func TestUpload_NoFile(t *testing.T) {
	handler := NewUploadHandler(ingest.NewPipeline(store.NewMemoryStore(), nil))

	req := httptest.NewRequest("POST", "/api/upload", strings.NewReader("no multipart here"))
	w := httptest.NewRecorder()
	handler.Upload(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "No file uploaded" {
		t.Errorf("expected 'No file uploaded', got %q", resp.Message)
	}
}

func TestUpload_WrongFieldName(t *testing.T) {
	handler := NewUploadHandler(ingest.NewPipeline(store.NewMemoryStore(), nil))

	req := testutil.MultipartRequest(t, "/api/upload", "document", "sales.xlsx", uploadFixture(t))
	w := httptest.NewRecorder()
	handler.Upload(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestUpload_UnsupportedType(t *testing.T) {
	handler := NewUploadHandler(ingest.NewPipeline(store.NewMemoryStore(), nil))

	req := testutil.MultipartRequest(t, "/api/upload", "file", "report.pdf", []byte("%PDF-1.4"))
	w := httptest.NewRecorder()
	handler.Upload(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestUpload_NoValidRows(t *testing.T) {
	st := testutil.SeedStore(t, testutil.SampleRecords())
	handler := NewUploadHandler(ingest.NewPipeline(st, nil))

	data := testutil.BuildWorkbook(t, [][]interface{}{
		{"State", "City", "2022"},
		{"", "Mumbai", 100},
	})
	req := testutil.MultipartRequest(t, "/api/upload", "file", "sales.xlsx", data)
	w := httptest.NewRecorder()
	handler.Upload(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)

	// Prior snapshot untouched
	stored, err := st.ReadAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 3 {
		t.Errorf("store must keep prior records, got %d", len(stored))
	}
}

func TestUpload_CorruptWorkbook(t *testing.T) {
	handler := NewUploadHandler(ingest.NewPipeline(store.NewMemoryStore(), nil))

	req := testutil.MultipartRequest(t, "/api/upload", "file", "sales.xlsx", []byte("not a workbook"))
	w := httptest.NewRecorder()
	handler.Upload(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}

func TestUpload_StoreFailure(t *testing.T) {
	handler := NewUploadHandler(ingest.NewPipeline(failingStore{}, nil))

	req := testutil.MultipartRequest(t, "/api/upload", "file", "sales.xlsx", uploadFixture(t))
	w := httptest.NewRecorder()
	handler.Upload(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}
