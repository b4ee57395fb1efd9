// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package registry implements the election registry state machine.

# Model

A Registry holds an append-only sequence of elections addressed by the
0-based index assigned at creation. Each election carries an immutable
identity (name, start time, duration, candidate list, eligibility set)
and two pieces of mutable state that only ever change together: per-
candidate vote counts and the per-voter hasVoted set.

Candidates are addressed by 1-based index. Index 0 is reserved as the
"no selection" sentinel and is always rejected, as is any index beyond
the candidate count.

# Operations

	idx, err := reg.CreateElection("Board 2026", []string{"Alice", "Bob"}, nil, 3600)
	err = reg.Vote("principal-id", idx, 1)
	info, err := reg.GetElectionInfo(idx)
	cand, err := reg.GetCandidate(idx, 1)
	voted, err := reg.GetHasVoted(idx, "principal-id")
	n := reg.GetElectionCount()

Vote preconditions are checked in a fixed, observable order: election
exists, candidate index in range, not already voted, voting window open
(the instant startTime+duration itself still accepted), eligibility on
strict elections. The first failing check aborts with no state change.

# Concurrency

One RWMutex guards the registry. CreateElection and Vote hold the write
lock for their whole duration, so mutations are atomic and totally
ordered; reads hold the read lock and observe committed snapshots only.

# Time and audit

The current time comes from an injected Clock, read once per operation.
Committed mutations emit audit events (see the audit package) inside the
write lock, so the audit stream order equals the commit order.
*/
package registry
