// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Logging

WithLogging wraps a handler with structured request/completion logging:

	mux.HandleFunc("POST /login", middleware.WithLogging(h.Login))

# JSON Helpers

  - JSONResponse: writes a JSON body with the given status
  - ErrorResponse: writes a models.ErrorResponse
  - ParseJSONBody: decodes a request body into a struct

# CORS

CORS allows cross-origin requests and answers preflight OPTIONS requests.
The X-Session-Token header used for authentication is allowed explicitly.

# Client IP

GetClientIP resolves the caller's address through X-Forwarded-For and
X-Real-IP before falling back to RemoteAddr.
*/
package middleware
