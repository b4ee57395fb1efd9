// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags and
environment variables.

# Settings

Flags win over environment variables:

	-p / PORT                 server port (default 4217)
	-d / DATABASE_URL         database connection string (required)
	-t / DATABASE_TYPE        "sqlite" (default) or "postgres"
	--token-salt / VOTER_TOKEN_SALT
	                          HMAC salt for principal tokens (required)

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

Secrets should come from the environment in production; the flags exist
for development convenience.
*/
package cliparse
