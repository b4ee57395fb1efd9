// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the elecTrust API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - ElectionHandler: election creation and registry-level reads
  - VotingHandler: vote casting and the caller's own vote status
  - QueryHandler: candidate, has-voted and results reads
  - PrincipalHandler: principal registration, identity, voting history

	electionHandler := handlers.NewElectionHandler(reg, cfg)
	votingHandler := handlers.NewVotingHandler(reg, db, m, cfg)

# Election Flow

	POST /elections                    → CreateElection (returns election_index)
	GET  /elections                    → GetElectionCount
	GET  /elections/{index}            → GetElectionInfo

Elections are immutable once created; only vote counts and per-voter
flags change afterwards, via Vote.

# Voting Flow

	POST /principals                   → Register (returns voter_token)
	POST /elections/{index}/votes      → Vote
	GET  /elections/{index}/my-vote    → GetMyVoteStatus

Voter operations require the X-Voter-Token header. The handler verifies
the token and passes the principal ID into the registry explicitly; the
registry never infers identity.

# Error Mapping

Registry errors carry a machine code in the response payload and map to
HTTP codes: not-found conditions → 404, duplicate vote and closed window
→ 409, ineligible voter → 403, creation validation → 400.

# Results

ComputeStandings in tally.go ranks candidates by vote count (competition
ranking) and feeds GET /elections/{index}/results.
*/
package handlers
