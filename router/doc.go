// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

# Routes

Election registry:

	POST /elections
	GET  /elections
	GET  /elections/{index}
	GET  /elections/{index}/candidates/{candidate}
	GET  /elections/{index}/voters/{voter}
	GET  /elections/{index}/results

Voting (X-Voter-Token required):

	POST /elections/{index}/votes
	GET  /elections/{index}/my-vote

Principals:

	POST /principals
	GET  /principals/me
	GET  /principals/me/votes

Operations:

	GET /health
	GET /metrics

Uses Go 1.22+ method and wildcard patterns on http.ServeMux. All domain
routes are wrapped with request logging.
*/
package router
