// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Middleware

  - WithLogging: structured request start/completion logging
  - CORS: cross-origin headers and preflight handling

# Helpers

  - JSONResponse: write a JSON body with a status code
  - ErrorResponse: transport-level error payload
  - DomainErrorResponse: error payload carrying a registry machine code
  - ParseJSONBody: decode a JSON request body
  - GetClientIP: client address from proxy headers or RemoteAddr
*/
package middleware
