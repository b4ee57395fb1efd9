// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package audit

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// EventType identifies a kind of audit event.
type EventType string

const (
	TypeElectionCreated EventType = "ELECTION_CREATED"
	TypeVoted           EventType = "VOTED"
)

// Event is one immutable entry in the audit trail. Which payload fields are
// meaningful depends on the type: creation events carry the candidate count
// and strict flag, vote events carry the voter and candidate name.
type Event struct {
	ID              string    `json:"id"`
	Type            EventType `json:"type"`
	Timestamp       time.Time `json:"timestamp"`
	ElectionName    string    `json:"election_name"`
	TotalCandidates int       `json:"total_candidates,omitempty"`
	StrictVoters    bool      `json:"strict_voters,omitempty"`
	Voter           string    `json:"voter,omitempty"`
	CandidateName   string    `json:"candidate_name,omitempty"`
}

// ElectionCreated builds the audit event for a newly created election.
func ElectionCreated(at time.Time, electionName string, totalCandidates int, strictVoters bool) Event {
	return Event{
		ID:              uuid.NewString(),
		Type:            TypeElectionCreated,
		Timestamp:       at,
		ElectionName:    electionName,
		TotalCandidates: totalCandidates,
		StrictVoters:    strictVoters,
	}
}

// Voted builds the audit event for an accepted vote.
func Voted(at time.Time, voter, electionName, candidateName string) Event {
	return Event{
		ID:            uuid.NewString(),
		Type:          TypeVoted,
		Timestamp:     at,
		ElectionName:  electionName,
		Voter:         voter,
		CandidateName: candidateName,
	}
}

// Recorder receives audit events. Implementations must not block for long:
// the registry records events while holding its write lock. Recorders own
// their failure handling; a failed sink never fails the recorded operation.
type Recorder interface {
	Record(e Event)
}

// Discard drops every event.
type Discard struct{}

func (Discard) Record(Event) {}

// MultiRecorder fans an event out to each recorder in order.
type MultiRecorder []Recorder

func (m MultiRecorder) Record(e Event) {
	for _, r := range m {
		r.Record(e)
	}
}

// LogRecorder writes events to the process log.
type LogRecorder struct{}

func (LogRecorder) Record(e Event) {
	switch e.Type {
	case TypeElectionCreated:
		slog.Info("audit: election created",
			"event_id", e.ID,
			"election", e.ElectionName,
			"total_candidates", e.TotalCandidates,
			"strict_voters", e.StrictVoters,
		)
	case TypeVoted:
		slog.Info("audit: vote cast",
			"event_id", e.ID,
			"election", e.ElectionName,
			"voter", e.Voter,
			"candidate", e.CandidateName,
		)
	default:
		slog.Info("audit: event", "event_id", e.ID, "type", string(e.Type))
	}
}
