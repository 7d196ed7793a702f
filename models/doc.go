/*
Package models defines the domain and request/response types for the sales
dashboard API.

# Domain Types

  - SalesRecord: one city's yearly sales figures plus resolved coordinates
  - Metrics: aggregated dashboard statistics (market counts, growth rates)

# Coordinate Sentinel

Latitude and longitude of exactly 0 mean "location unresolved". The ingestion
pipeline never stores such a record, so every SalesRecord read back from the
store carries a usable map position.

# Wire Types

Request and response payloads are plain structs with json tags matching the
frontend's camelCase field names. ErrorResponse is the uniform error envelope
written by the middleware helpers.
*/
package models
