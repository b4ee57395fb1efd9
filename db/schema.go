// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the durable tables: the append-only audit trail and
// the principal directory. Safe to call multiple times - uses IF NOT EXISTS.
// Election state itself lives in the in-memory registry; the audit trail is
// the durable record of what happened to it.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Audit trail (append-only; rows are never updated or deleted)
CREATE TABLE IF NOT EXISTS audit_event (
    id TEXT PRIMARY KEY,
    event_type TEXT NOT NULL,
    recorded_at TIMESTAMP NOT NULL,
    election_name TEXT NOT NULL,
    total_candidates INTEGER NOT NULL DEFAULT 0,
    strict_voters BOOLEAN NOT NULL DEFAULT FALSE,
    voter TEXT NOT NULL DEFAULT '',
    candidate_name TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_audit_event_election ON audit_event(election_name);
CREATE INDEX IF NOT EXISTS idx_audit_event_voter ON audit_event(voter);

-- Principal directory
CREATE TABLE IF NOT EXISTS principal (
    id TEXT PRIMARY KEY,
    display_name TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    last_seen_at TIMESTAMP NOT NULL
);
`
