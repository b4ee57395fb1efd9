// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and view types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateElectionRequest: name, candidates, eligible_voters, duration_seconds
  - VoteRequest: candidate_index (1-based)
  - RegisterPrincipalRequest: display_name

# Response Types

Types for JSON responses:

  - CreateElectionResponse: election_index
  - VoteResponse: election_index, candidate_index, message
  - RegisterPrincipalResponse: principal, voter_token
  - PrincipalResponse: principal, display_name, created_at, last_seen_at
  - MyVotesResponse: principal, votes
  - ElectionInfoResponse, CandidateResponse, HasVotedResponse,
    ElectionCountResponse: registry read views
  - ResultsResponse: ranked candidate standings
  - ErrorResponse: error, code, message

# Conventions

Candidate indexes are 1-based everywhere in the API; 0 is the reserved
"no selection" sentinel. Election indexes are 0-based creation order.
ErrorResponse.Code carries the registry machine code (HAS_VOTED,
VOTING_END, ...) for domain failures and is empty for transport errors.
*/
package models
