package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

	// Bound per-address lookups so one unreachable service cannot stall a
	// whole ingestion batch.
	requestTimeout = 10 * time.Second
)

// Coordinates is a resolved latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Resolver turns a free-text address into coordinates. The second return
// value reports whether the address resolved; unresolved is a normal
// outcome, not an error.
type Resolver interface {
	Resolve(ctx context.Context, address string) (Coordinates, bool)
}

// googleResponse is the subset of the Google Geocoding API response we read.
type googleResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location Coordinates `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// GoogleResolver resolves addresses through the Google Geocoding API.
type GoogleResolver struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGoogleResolver(apiKey string) *GoogleResolver {
	return &GoogleResolver{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// NewGoogleResolverURL is like NewGoogleResolver but targets a custom
// endpoint. Used by tests.
func NewGoogleResolverURL(apiKey, baseURL string) *GoogleResolver {
	r := NewGoogleResolver(apiKey)
	r.baseURL = baseURL
	return r
}

// Resolve looks up address and returns its coordinates. Any failure
// (no credential, network error, non-OK status, zero results) reports
// unresolved; callers fall back to their own coordinate source.
func (g *GoogleResolver) Resolve(ctx context.Context, address string) (Coordinates, bool) {
	if g.apiKey == "" {
		return Coordinates{}, false
	}

	body, err := g.lookup(ctx, address)
	if err != nil {
		slog.Warn("geocode request failed", "address", address, "error", err)
		return Coordinates{}, false
	}

	var resp googleResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		slog.Warn("geocode response malformed", "address", address, "error", err)
		return Coordinates{}, false
	}

	if resp.Status != "OK" || len(resp.Results) == 0 {
		slog.Warn("geocode returned no match", "address", address, "status", resp.Status)
		return Coordinates{}, false
	}

	return resp.Results[0].Geometry.Location, true
}

// RawLookup performs a lookup and returns the geocoding service's JSON
// verbatim. Used by the geocode proxy endpoint.
func (g *GoogleResolver) RawLookup(ctx context.Context, address string) ([]byte, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("no geocoding credential configured")
	}
	return g.lookup(ctx, address)
}

func (g *GoogleResolver) lookup(ctx context.Context, address string) ([]byte, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.apiKey)

	reqURL := fmt.Sprintf("%s?%s", g.baseURL, params.Encode())

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("geocoding API returned status %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}
