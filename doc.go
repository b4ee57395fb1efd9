// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the elecTrust API server.

elecTrust is a trust-minimized election registry: it records elections,
enforces voter eligibility and timing rules, and tallies votes with
strong consistency guarantees, backed by an append-only audit trail.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=elections.db VOTER_TOKEN_SALT=... go run main.go

Or with flags:

	go run main.go -p 4217 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string
  - VOTER_TOKEN_SALT (--token-salt): secret for principal token HMAC

Optional settings:

  - PORT (-p): server port (default: 4217)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"

A .env file in the working directory is loaded before flag parsing.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - registry: the election/voting state machine (the core)
  - audit: append-only audit events, log/SQL/metrics recorders
  - metrics: Prometheus counters, served on /metrics
  - handlers: HTTP request handlers (elections, voting, queries, principals)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response types
  - auth: principal token generation and validation
  - db: schema creation (audit trail, principal directory)
  - cliparse: configuration parsing

Election state lives in the in-memory registry under a single lock; the
audit trail is the durable record of every accepted mutation.

See package documentation for each component.
*/
package main
