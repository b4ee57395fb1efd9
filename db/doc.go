// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - audit_event: append-only audit trail (see the audit package)
  - principal: registered voter principals

Election and vote state is not stored here: the registry holds it in
memory and the audit trail is its durable record. audit_event rows are
never updated or deleted.

# Drivers

The schema works unchanged on PostgreSQL (lib/pq) and SQLite
(modernc.org/sqlite); statements use $N placeholders, which both drivers
accept.

# Indexes

  - audit_event.election_name
  - audit_event.voter
*/
package db
