/*
Package geocode wraps the Google Geocoding API.

# Resolver

The Resolver interface returns coordinates plus an ok flag:

	coords, ok := resolver.Resolve(ctx, "Bengaluru, Karnataka, India")

Unresolved (missing credential, network failure, non-OK status, zero results)
is a normal outcome. Nothing in this package errors across the Resolve
boundary; callers fall back to spreadsheet-supplied coordinates.

# Raw Proxy

RawLookup returns the geocoding service's JSON verbatim for the
POST /api/geocode proxy endpoint, and does return an error, which the
handler surfaces as a 500.

Every lookup carries a bounded timeout so a slow or unreachable service
cannot stall an ingestion batch.
*/
package geocode
