package ingest

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lavanya1309/techical-sales-web-application/geocode"
	"github.com/lavanya1309/techical-sales-web-application/models"
)

// Per-row rejection reasons. Rejections are logged and skipped; they never
// abort the batch.
var (
	errMissingMarket = errors.New("missing state or city")
	errNoCoordinates = errors.New("no usable coordinates")
)

// Normalizer converts one raw spreadsheet row into a validated SalesRecord.
type Normalizer struct {
	// resolver is nil when no geocoding credential is configured; rows then
	// rely entirely on their own Latitude/Longitude columns.
	resolver geocode.Resolver
}

func NewNormalizer(resolver geocode.Resolver) *Normalizer {
	return &Normalizer{resolver: resolver}
}

// Normalize validates a row and resolves its coordinates. Geocoding is
// best-effort: an unresolved lookup falls back to the row's Latitude and
// Longitude columns, and the row is only rejected when neither source yields
// a non-zero pair.
func (n *Normalizer) Normalize(ctx context.Context, row Row) (models.SalesRecord, error) {
	state := stringField(row, "State", "state")
	city := stringField(row, "City", "city")
	if state == "" || city == "" {
		return models.SalesRecord{}, errMissingMarket
	}

	rec := models.SalesRecord{
		State:     state,
		City:      city,
		Sales2022: intField(row, "2022"),
		Sales2023: intField(row, "2023"),
		Sales2024: intField(row, "2024"),
		Sales2025: intField(row, "2025"),
		Total:     intField(row, "Total", "total"),
	}

	resolved := false
	if n.resolver != nil {
		address := fmt.Sprintf("%s, %s, India", city, state)
		if coords, ok := n.resolver.Resolve(ctx, address); ok {
			rec.Latitude = coords.Lat
			rec.Longitude = coords.Lng
			resolved = true
		}
	}
	if !resolved {
		rec.Latitude = floatField(row, "Latitude", "latitude")
		rec.Longitude = floatField(row, "Longitude", "longitude")
	}

	// 0 is the sentinel for "no usable location"
	if rec.Latitude == 0 || rec.Longitude == 0 {
		return models.SalesRecord{}, errNoCoordinates
	}

	if rec.Total == 0 {
		rec.Total = rec.Sales2022 + rec.Sales2023 + rec.Sales2024 + rec.Sales2025
	}

	return rec, nil
}

// stringField returns the first non-empty trimmed value among the candidate
// headers, tried in order.
func stringField(row Row, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(row[key]); v != "" {
			return v
		}
	}
	return ""
}

// intField parses the first candidate cell as a non-negative integer.
// Missing or unparsable values default to 0, never to a rejection. Excel
// sometimes renders integers as "150.0", so a float parse is the fallback.
func intField(row Row, keys ...string) int {
	raw := stringField(row, keys...)
	if raw == "" {
		return 0
	}
	raw = strings.ReplaceAll(raw, ",", "")

	v, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return 0
		}
		v = int(f)
	}
	if v < 0 {
		return 0
	}
	return v
}

// floatField parses the first candidate cell as a float, defaulting to 0.
func floatField(row Row, keys ...string) float64 {
	raw := stringField(row, keys...)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
