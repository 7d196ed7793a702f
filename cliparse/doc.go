/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Precedence

CLI flags take precedence over environment variables:

	go run main.go -p 8080 -t sqlite -d file:sales.db

Environment variables serve as fallback:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): memory, sqlite or postgres (default: memory)
  - DATABASE_URL (-d): DSN, required for sqlite/postgres
  - GOOGLE_MAPS_API_KEY / MAPS_API_KEY (-maps-key): geocoding credential

# Geocoding Credential

The maps key is read from GOOGLE_MAPS_API_KEY first, then MAPS_API_KEY. It is
optional: without it the ingestion pipeline uses spreadsheet-supplied
coordinates and the geocode/maps-config endpoints report that no key is
configured.
*/
package cliparse
