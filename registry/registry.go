// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"sync"
	"time"

	"github.com/alkautsarf/elecTrust-v2/audit"
)

// Principal is an opaque authenticated caller identity. The registry never
// inspects or derives principals; the calling context supplies them.
type Principal string

// Clock supplies the current time. The registry reads it exactly once per
// operation that needs it; it must be monotonically non-decreasing across
// operations.
type Clock func() time.Time

type candidate struct {
	name      string
	voteCount uint64
}

// election is fully formed at construction. After that, only candidate
// vote counts and hasVoted entries ever change, and only together.
type election struct {
	name           string
	startTime      time.Time
	duration       int64 // seconds; window closes at startTime + duration, inclusive
	candidates     []candidate
	strictVoters   bool
	eligibleVoters map[Principal]struct{}
	hasVoted       map[Principal]struct{}
}

func (e *election) votingEnd() time.Time {
	return e.startTime.Add(time.Duration(e.duration) * time.Second)
}

// ElectionInfo is the immutable identity of an election.
type ElectionInfo struct {
	Name            string
	StartTime       time.Time
	Duration        int64
	TotalCandidates int
	StrictVoters    bool
}

// CandidateInfo is a point-in-time view of one candidate.
type CandidateInfo struct {
	Name      string
	VoteCount uint64
}

// Registry is an append-only sequence of elections addressed by the 0-based
// index assigned at creation. Elections are never removed or reordered.
//
// All mutations run under the write lock for their entire duration, so every
// operation is atomic and totally ordered; reads run under the read lock and
// only ever observe committed state. Audit events are emitted inside the
// write lock, after the transition commits, so audit order equals commit
// order.
type Registry struct {
	mu        sync.RWMutex
	clock     Clock
	recorder  audit.Recorder
	elections []*election
}

// New creates an empty registry. A nil clock defaults to time.Now; a nil
// recorder discards audit events.
func New(clock Clock, recorder audit.Recorder) *Registry {
	if clock == nil {
		clock = time.Now
	}
	if recorder == nil {
		recorder = audit.Discard{}
	}
	return &Registry{clock: clock, recorder: recorder}
}

// CreateElection validates its inputs, appends a new election and returns its
// index. Candidate names are validated in declaration order and the first
// empty name aborts the whole operation. A non-empty eligibleVoters set makes
// the election strict; duplicates collapse. Negative durations are treated
// as zero. On any error the registry is unchanged.
func (r *Registry) CreateElection(name string, candidateNames []string, eligibleVoters []Principal, duration int64) (int, error) {
	if name == "" {
		return 0, ErrInvalidName
	}
	if len(candidateNames) == 0 {
		return 0, ErrInvalidCandidateIndex
	}
	for _, cn := range candidateNames {
		if cn == "" {
			return 0, ErrInvalidCandidateName
		}
	}
	if duration < 0 {
		duration = 0
	}

	e := &election{
		name:       name,
		duration:   duration,
		candidates: make([]candidate, 0, len(candidateNames)),
		hasVoted:   make(map[Principal]struct{}),
	}
	for _, cn := range candidateNames {
		e.candidates = append(e.candidates, candidate{name: cn})
	}
	if len(eligibleVoters) > 0 {
		e.strictVoters = true
		e.eligibleVoters = make(map[Principal]struct{}, len(eligibleVoters))
		for _, p := range eligibleVoters {
			e.eligibleVoters[p] = struct{}{}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e.startTime = r.clock()
	index := len(r.elections)
	r.elections = append(r.elections, e)

	r.recorder.Record(audit.ElectionCreated(e.startTime, e.name, len(e.candidates), e.strictVoters))
	return index, nil
}

// Vote records one vote by voter for the candidate at candidateIndex
// (1-based; 0 is the reserved "no selection" sentinel and always invalid).
//
// Preconditions are checked in a fixed order and the first failure aborts
// with no state change: election exists, candidate index in range, voter has
// not voted, window still open, voter eligible (strict elections only).
// On success the voter's hasVoted flag flips and exactly one candidate count
// increments, as a single atomic unit.
func (r *Registry) Vote(voter Principal, electionIndex, candidateIndex int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if electionIndex < 0 || electionIndex >= len(r.elections) {
		return ErrElectionNotFound
	}
	e := r.elections[electionIndex]

	if candidateIndex < 1 || candidateIndex > len(e.candidates) {
		return ErrCandidateNotFound
	}
	if _, voted := e.hasVoted[voter]; voted {
		return ErrHasVoted
	}
	now := r.clock()
	if now.After(e.votingEnd()) {
		return ErrVotingEnd
	}
	if e.strictVoters {
		if _, ok := e.eligibleVoters[voter]; !ok {
			return ErrUnauthorizedVoter
		}
	}

	e.hasVoted[voter] = struct{}{}
	c := &e.candidates[candidateIndex-1]
	c.voteCount++

	r.recorder.Record(audit.Voted(now, string(voter), e.name, c.name))
	return nil
}

// GetElectionInfo returns the immutable identity fields of an election.
func (r *Registry) GetElectionInfo(electionIndex int) (ElectionInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if electionIndex < 0 || electionIndex >= len(r.elections) {
		return ElectionInfo{}, ErrElectionNotFound
	}
	e := r.elections[electionIndex]
	return ElectionInfo{
		Name:            e.name,
		StartTime:       e.startTime,
		Duration:        e.duration,
		TotalCandidates: len(e.candidates),
		StrictVoters:    e.strictVoters,
	}, nil
}

// GetCandidate returns the name and current tally of the candidate at
// candidateIndex (1-based, same bounds rule as Vote).
func (r *Registry) GetCandidate(electionIndex, candidateIndex int) (CandidateInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if electionIndex < 0 || electionIndex >= len(r.elections) {
		return CandidateInfo{}, ErrElectionNotFound
	}
	e := r.elections[electionIndex]
	if candidateIndex < 1 || candidateIndex > len(e.candidates) {
		return CandidateInfo{}, ErrCandidateNotFound
	}
	c := e.candidates[candidateIndex-1]
	return CandidateInfo{Name: c.name, VoteCount: c.voteCount}, nil
}

// GetHasVoted reports whether voter has voted in the election. Voters the
// election has never seen report false.
func (r *Registry) GetHasVoted(electionIndex int, voter Principal) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if electionIndex < 0 || electionIndex >= len(r.elections) {
		return false, ErrElectionNotFound
	}
	_, voted := r.elections[electionIndex].hasVoted[voter]
	return voted, nil
}

// GetElectionCount returns the number of elections ever created.
func (r *Registry) GetElectionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.elections)
}
