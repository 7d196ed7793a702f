/*
Package main provides the entry point for the sales dashboard API server.

The server ingests Excel spreadsheets of per-city sales figures for India,
normalizes and geocodes the rows into sales records, and serves the records
plus derived analytics to the dashboard frontend (table, map, filters).

# Starting the Server

The server reads configuration from a .env file, environment variables, or
CLI flags:

	GOOGLE_MAPS_API_KEY=... go run main.go

Or with flags:

	go run main.go -p 8080 -t sqlite -d file:sales.db

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): memory, sqlite or postgres (default: memory)
  - DATABASE_URL (-d): DSN, required for sqlite/postgres
  - GOOGLE_MAPS_API_KEY / MAPS_API_KEY: geocoding credential; without it
    uploads fall back to spreadsheet-supplied coordinates

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (sales, upload, analytics, geocode)
  - ingest: Excel parsing, row normalization, snapshot replacement
  - geocode: Google Geocoding API client with best-effort resolution
  - store: record store (in-memory, SQLite or PostgreSQL)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: domain and request/response types
  - cliparse: Configuration parsing

Each upload replaces the whole stored snapshot: the store starts empty on
boot, is cleared before every successful ingestion, and readers always see
either the previous snapshot or the new one.

See package documentation for each component.
*/
package main
