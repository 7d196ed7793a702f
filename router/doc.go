/*
Package router defines the HTTP route table.

Uses Go 1.22+ method routing on the standard http.ServeMux:

	GET  /health           health check
	GET  /api/sales        list the current snapshot
	POST /api/upload       Excel upload (multipart, field "file")
	POST /api/clear        clear all records
	GET  /api/analytics    dashboard metrics
	POST /api/geocode      geocode proxy
	GET  /api/maps-config  maps API key for the frontend map

NewRouter wires the handlers with an injected store and config, constructing
the geocoding resolver only when a credential is configured. Every API route
is wrapped with request logging.
*/
package router
