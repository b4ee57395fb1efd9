package models

import "time"

// Request types

type CreateElectionRequest struct {
	Name            string   `json:"name"`
	Candidates      []string `json:"candidates"`
	EligibleVoters  []string `json:"eligible_voters,omitempty"`
	DurationSeconds int64    `json:"duration_seconds"`
}

// CandidateIndex is 1-based; 0 means "no selection" and is always rejected.
type VoteRequest struct {
	CandidateIndex int `json:"candidate_index"`
}

type RegisterPrincipalRequest struct {
	DisplayName string `json:"display_name,omitempty"`
}

// Response types

type CreateElectionResponse struct {
	ElectionIndex int `json:"election_index"`
}

type VoteResponse struct {
	ElectionIndex  int    `json:"election_index"`
	CandidateIndex int    `json:"candidate_index"`
	Message        string `json:"message"`
}

type RegisterPrincipalResponse struct {
	Principal  string `json:"principal"`
	VoterToken string `json:"voter_token"`
}

type PrincipalResponse struct {
	Principal   string    `json:"principal"`
	DisplayName string    `json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	LastSeenAt  time.Time `json:"last_seen_at"`
}

type VotedRecord struct {
	ElectionName  string    `json:"election_name"`
	CandidateName string    `json:"candidate_name"`
	VotedAt       time.Time `json:"voted_at"`
}

type MyVotesResponse struct {
	Principal string        `json:"principal"`
	Votes     []VotedRecord `json:"votes"`
}

// Domain views

type ElectionInfoResponse struct {
	ElectionIndex   int       `json:"election_index"`
	Name            string    `json:"name"`
	StartTime       time.Time `json:"start_time"`
	DurationSeconds int64     `json:"duration_seconds"`
	TotalCandidates int       `json:"total_candidates"`
	StrictVoters    bool      `json:"strict_voters"`
}

type CandidateResponse struct {
	CandidateIndex int    `json:"candidate_index"`
	Name           string `json:"name"`
	VoteCount      uint64 `json:"vote_count"`
}

type HasVotedResponse struct {
	ElectionIndex int    `json:"election_index"`
	Voter         string `json:"voter"`
	HasVoted      bool   `json:"has_voted"`
}

type ElectionCountResponse struct {
	Count int `json:"count"`
}

// Results

type CandidateStanding struct {
	Rank           int    `json:"rank"` // competition ranking: ties share, next rank skips
	CandidateIndex int    `json:"candidate_index"`
	Name           string `json:"name"`
	VoteCount      uint64 `json:"vote_count"`
}

type ResultsResponse struct {
	ElectionIndex int                 `json:"election_index"`
	ElectionName  string              `json:"election_name"`
	TotalVotes    uint64              `json:"total_votes"`
	Standings     []CandidateStanding `json:"standings"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
