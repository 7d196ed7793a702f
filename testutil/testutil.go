package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/lavanya1309/techical-sales-web-application/cliparse"
	"github.com/lavanya1309/techical-sales-web-application/geocode"
	"github.com/lavanya1309/techical-sales-web-application/models"
	"github.com/lavanya1309/techical-sales-web-application/store"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DatabaseType: cliparse.StoreMemory,
		MapsAPIKey:   "test-maps-key",
	}
}

// SeedStore fills a fresh in-memory store with records
func SeedStore(t *testing.T, records []models.SalesRecord) *store.MemoryStore {
	t.Helper()

	s := store.NewMemoryStore()
	if _, err := s.InsertMany(context.Background(), records); err != nil {
		t.Fatalf("Failed to seed store: %v", err)
	}
	return s
}

// SampleRecords returns a small realistic record set for handler tests
func SampleRecords() []models.SalesRecord {
	return []models.SalesRecord{
		{State: "Karnataka", City: "Bengaluru", Latitude: 12.9716, Longitude: 77.5946, Sales2022: 100, Sales2023: 110, Sales2024: 130, Sales2025: 150, Total: 490},
		{State: "Maharashtra", City: "Mumbai", Latitude: 19.076, Longitude: 72.8777, Sales2022: 200, Sales2023: 190, Sales2024: 210, Sales2025: 220, Total: 820},
		{State: "Tamil Nadu", City: "Chennai", Latitude: 13.0827, Longitude: 80.2707, Sales2022: 0, Sales2023: 20, Sales2024: 45, Sales2025: 80, Total: 145},
	}
}

// BuildWorkbook creates an in-memory xlsx file from a header row and data
// rows, mirroring what the dashboard's upload form sends
func BuildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("Failed to build cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				t.Fatalf("Failed to set cell value: %v", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}
	return buf.Bytes()
}

// MultipartRequest builds a multipart upload request with the file under the
// given field name
func MultipartRequest(t *testing.T, path, field, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("Failed to create multipart part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Failed to write multipart content: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// MakeRequest creates an HTTP test request with an optional JSON body
func MakeRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// StaticResolver resolves addresses from a fixed map. Unknown addresses are
// unresolved, which exercises the coordinate fallback path. Safe for use
// from the pipeline's worker pool.
type StaticResolver struct {
	Coords map[string]geocode.Coordinates

	mu    sync.Mutex
	calls int
}

func (r *StaticResolver) Resolve(_ context.Context, address string) (geocode.Coordinates, bool) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()

	coords, ok := r.Coords[address]
	return coords, ok
}

// Calls reports how many lookups the resolver served.
func (r *StaticResolver) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// UnresolvedResolver never resolves, standing in for a dead or keyless
// geocoding service.
type UnresolvedResolver struct{}

func (UnresolvedResolver) Resolve(context.Context, string) (geocode.Coordinates, bool) {
	return geocode.Coordinates{}, false
}
