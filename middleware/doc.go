/*
Package middleware provides HTTP middleware and JSON helpers.

# Request Logging

WithLogging wraps individual handlers and logs method, path and duration
via slog:

	mux.HandleFunc("GET /api/sales", middleware.WithLogging(handler.List))

# JSON Helpers

  - JSONResponse: writes a JSON body with the given status code
  - ErrorResponse: writes the uniform ErrorResponse envelope
  - ParseJSONBody: decodes a request body into a struct

# CORS

CORS wraps the whole mux and echoes the request origin, allowing the
dashboard frontend (typically a Vite dev server on another port) to call the
API. Preflight OPTIONS requests are answered directly.
*/
package middleware
