package models

// SalesRecord is one city's multi-year sales figures. A record is only
// persisted when both coordinates are non-zero; zero is the sentinel for an
// unresolved location.
type SalesRecord struct {
	ID        string  `json:"id"`
	State     string  `json:"state"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Sales2022 int     `json:"sales2022"`
	Sales2023 int     `json:"sales2023"`
	Sales2024 int     `json:"sales2024"`
	Sales2025 int     `json:"sales2025"`
	Total     int     `json:"total"`
}

// Metrics is the derived summary computed over the current snapshot.
type Metrics struct {
	TotalMarkets      int     `json:"totalMarkets"`
	TotalSales2024    int     `json:"totalSales2024"`
	AvgGrowthRate     float64 `json:"avgGrowthRate"`
	ActiveMarkets     int     `json:"activeMarkets"`
	GrowthMarkets     int     `json:"growthMarkets"`
	EmergingMarkets   int     `json:"emergingMarkets"`
	MarketPenetration float64 `json:"marketPenetration"`
}

// Request types

type GeocodeRequest struct {
	Address string `json:"address"`
}

// Response types

type UploadResponse struct {
	Message string        `json:"message"`
	Count   int           `json:"count"`
	Data    []SalesRecord `json:"data"`
}

type MapsConfigResponse struct {
	// APIKey is null when no geocoding credential is configured.
	APIKey *string `json:"apiKey"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
