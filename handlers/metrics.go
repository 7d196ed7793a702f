package handlers

import (
	"math"

	"github.com/lavanya1309/techical-sales-web-application/models"
)

// ComputeMetrics derives the dashboard summary from the full record set.
// Pure function: an empty set yields all-zero metrics, never an error.
func ComputeMetrics(records []models.SalesRecord) models.Metrics {
	m := models.Metrics{TotalMarkets: len(records)}
	if len(records) == 0 {
		return m
	}

	var growthSum float64
	growthCount := 0

	for _, rec := range records {
		m.TotalSales2024 += rec.Sales2024

		if rec.Total > 0 {
			m.ActiveMarkets++
		}

		g := growthRate(rec)

		// Non-finite rates are excluded from the average; the zero-guarded
		// formula keeps zero-baseline markets in at 0.
		if !math.IsNaN(g) && !math.IsInf(g, 0) {
			growthSum += g
			growthCount++
		}

		if g > 10 {
			m.GrowthMarkets++
		}
		if g > 50 {
			m.EmergingMarkets++
		}
	}

	if growthCount > 0 {
		m.AvgGrowthRate = round1(growthSum / float64(growthCount))
	}
	m.MarketPenetration = round1(float64(m.ActiveMarkets) / float64(m.TotalMarkets) * 100)

	return m
}

// growthRate is the percentage change from 2022 to 2025, zero-guarded: a
// market with no 2022 baseline reports 0 growth rather than an undefined
// rate. The same formula feeds the average and the market counts.
func growthRate(rec models.SalesRecord) float64 {
	if rec.Sales2022 == 0 {
		return 0
	}
	return float64(rec.Sales2025-rec.Sales2022) / float64(rec.Sales2022) * 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
