/*
Package ingest implements the Excel ingestion pipeline.

# Flow

	upload bytes
	  → ValidateUpload (MIME allow-list, 10 MiB cap, before any parsing)
	  → readRows (excelize, first worksheet, header-keyed rows)
	  → Normalizer per row (worker pool)
	  → store.Replace (atomic snapshot swap)

# Row Normalization

Each row resolves its fields in order: state and city (either-case headers,
reject when empty), yearly sales and total (missing or unparsable defaults
to 0), then coordinates. When a geocoding resolver is configured the row is
geocoded as "{city}, {state}, India"; an unresolved lookup falls back to the
row's own Latitude/Longitude columns. A row whose final latitude or longitude
is 0 is rejected. Total defaults to the sum of the four yearly fields when
absent or zero.

Rejected rows are logged at Warn with their sheet row number and skipped;
a bad row never aborts the batch.

# Failure Semantics

ErrUnsupportedUpload and ErrNoValidRows are the two caller-visible
sentinels; both leave the store's prior snapshot intact. The store is only
touched once at least one row validates, via a single Replace call.
*/
package ingest
