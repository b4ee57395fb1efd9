// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package audit

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Store persists audit events to the audit_event table. Rows are only ever
// inserted; nothing updates or deletes them. A failed insert is logged and
// dropped so the already-committed registry operation is unaffected.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record implements Recorder.
func (s *Store) Record(e Event) {
	_, err := s.db.Exec(`
		INSERT INTO audit_event (id, event_type, recorded_at, election_name, total_candidates, strict_voters, voter, candidate_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, e.ID, string(e.Type), e.Timestamp, e.ElectionName, e.TotalCandidates, e.StrictVoters, e.Voter, e.CandidateName)
	if err != nil {
		slog.Error("failed to persist audit event", "error", err, "event_id", e.ID, "type", string(e.Type))
	}
}

// VoterEvents returns the persisted VOTED events for one voter, oldest first.
func (s *Store) VoterEvents(voter string) ([]Event, error) {
	rows, err := s.db.Query(`
		SELECT id, event_type, recorded_at, election_name, total_candidates, strict_voters, voter, candidate_name
		FROM audit_event
		WHERE voter = $1 AND event_type = $2
		ORDER BY recorded_at
	`, voter, string(TypeVoted))
	if err != nil {
		return nil, fmt.Errorf("failed to query voter events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

// ElectionEvents returns all persisted events for one election name, oldest
// first.
func (s *Store) ElectionEvents(electionName string) ([]Event, error) {
	rows, err := s.db.Query(`
		SELECT id, event_type, recorded_at, election_name, total_candidates, strict_voters, voter, candidate_name
		FROM audit_event
		WHERE election_name = $1
		ORDER BY recorded_at
	`, electionName)
	if err != nil {
		return nil, fmt.Errorf("failed to query election events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

// Count returns the total number of persisted events.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM audit_event`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count audit events: %w", err)
	}
	return n, nil
}

func scanEvents(rows *sql.Rows) ([]Event, error) {
	events := []Event{}
	for rows.Next() {
		var e Event
		var typ string
		if err := rows.Scan(&e.ID, &typ, &e.Timestamp, &e.ElectionName, &e.TotalCandidates, &e.StrictVoters, &e.Voter, &e.CandidateName); err != nil {
			return nil, fmt.Errorf("failed to scan audit event: %w", err)
		}
		e.Type = EventType(typ)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read audit events: %w", err)
	}
	return events, nil
}
