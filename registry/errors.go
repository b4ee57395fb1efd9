// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import "errors"

// Registry errors. Every failure of a registry operation is one of these;
// an operation that returns an error has made no state change at all.
var (
	ErrInvalidName           = errors.New("election name cannot be empty")
	ErrInvalidCandidateName  = errors.New("candidate name cannot be empty")
	ErrInvalidCandidateIndex = errors.New("election needs at least one candidate")
	ErrElectionNotFound      = errors.New("election not found")
	ErrCandidateNotFound     = errors.New("candidate not found")
	ErrHasVoted              = errors.New("caller already voted in this election")
	ErrVotingEnd             = errors.New("voting window has closed")
	ErrUnauthorizedVoter     = errors.New("caller is not eligible to vote in this election")
)

// Code returns a stable machine-readable code for a registry error,
// suitable for API payloads and metric labels. Unknown errors map to
// the empty string.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidName):
		return "INVALID_NAME"
	case errors.Is(err, ErrInvalidCandidateName):
		return "INVALID_CANDIDATE_NAME"
	case errors.Is(err, ErrInvalidCandidateIndex):
		return "INVALID_CANDIDATE_INDEX"
	case errors.Is(err, ErrElectionNotFound):
		return "ELECTION_NOT_FOUND"
	case errors.Is(err, ErrCandidateNotFound):
		return "CANDIDATE_NOT_FOUND"
	case errors.Is(err, ErrHasVoted):
		return "HAS_VOTED"
	case errors.Is(err, ErrVotingEnd):
		return "VOTING_END"
	case errors.Is(err, ErrUnauthorizedVoter):
		return "UNAUTHORIZED_VOTER"
	default:
		return ""
	}
}
