package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lavanya1309/techical-sales-web-application/models"
	"github.com/lavanya1309/techical-sales-web-application/store"
	"github.com/lavanya1309/techical-sales-web-application/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	mux := NewRouter(store.NewMemoryStore(), testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := NewRouter(store.NewMemoryStore(), testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "sales-dashboard API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := NewRouter(store.NewMemoryStore(), testutil.GetTestConfig())

	// Test that routes respond (handler is invoked)
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/api/sales"},
		{"POST", "/api/upload"},
		{"POST", "/api/clear"},
		{"GET", "/api/analytics"},
		{"POST", "/api/geocode"},
		{"GET", "/api/maps-config"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			// 400 is valid handler behavior (missing body/file); 405 means
			// the route table is wrong
			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405 - not registered", tc.method, tc.path)
			}
			if w.Code == http.StatusNotFound && tc.path != "/" {
				t.Errorf("Route %s %s returned 404 - not registered", tc.method, tc.path)
			}
		})
	}
}

// Full upload → list → analytics → clear cycle through the mux. No maps key
// is configured, so rows use their spreadsheet coordinates and nothing
// reaches out to the geocoding service.
func TestUploadListAnalyticsClearFlow(t *testing.T) {
	st := store.NewMemoryStore()
	cfg := testutil.GetTestConfig()
	cfg.MapsAPIKey = ""
	mux := NewRouter(st, cfg)

	// Upload a workbook
	data := testutil.BuildWorkbook(t, [][]interface{}{
		{"State", "City", "2022", "2023", "2024", "2025", "Total", "Latitude", "Longitude"},
		{"Karnataka", "Bengaluru", 100, 110, 130, 150, "", 12.97, 77.59},
		{"Maharashtra", "Mumbai", 200, 190, 210, 220, "", 19.07, 72.87},
	})
	req := testutil.MultipartRequest(t, "/api/upload", "file", "sales.xlsx", data)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var uploadResp models.UploadResponse
	testutil.AssertJSON(t, w, &uploadResp)
	if uploadResp.Count != 2 {
		t.Fatalf("expected 2 uploaded records, got %d", uploadResp.Count)
	}

	// List the records back
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/api/sales", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var records []models.SalesRecord
	testutil.AssertJSON(t, w, &records)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	// Analytics over the snapshot
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/api/analytics", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var m models.Metrics
	testutil.AssertJSON(t, w, &m)
	if m.TotalMarkets != 2 {
		t.Errorf("expected 2 markets, got %d", m.TotalMarkets)
	}
	if m.TotalSales2024 != 340 {
		t.Errorf("expected 340 units in 2024, got %d", m.TotalSales2024)
	}

	// Clear everything
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/api/clear", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/api/sales", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	records = nil
	testutil.AssertJSON(t, w, &records)
	if len(records) != 0 {
		t.Errorf("expected empty store after clear, got %d records", len(records))
	}
}
