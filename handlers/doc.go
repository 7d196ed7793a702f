/*
Package handlers contains HTTP request handlers for the sales dashboard API.

# Handler Types

Each handler is a struct with its dependencies injected via a constructor:

  - SalesHandler: record listing and clearing (store)
  - UploadHandler: Excel ingestion (ingest.Pipeline)
  - AnalyticsHandler: dashboard metrics (store)
  - GeocodeHandler: geocode proxy and maps configuration (config, resolver)

# Upload Flow

	POST /api/upload (multipart, field "file")
	  → 400 "No file uploaded" when the field is missing
	  → 400 for non-spreadsheet or oversize payloads
	  → 400 "no valid data found..." when no row survives normalization
	  → 500 for corrupt workbooks
	  → 200 {message, count, data} on success

Every successful upload replaces the whole stored snapshot.

# Analytics

ComputeMetrics in metrics.go is the pure aggregation over the record set:
market counts, 2024 sales volume, average growth rate (2022→2025,
zero-guarded), growth (>10%) and emerging (>50%) market counts, and market
penetration. The handler only reads the store and delegates to it.
*/
package handlers
