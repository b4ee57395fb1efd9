// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package audit defines the append-only audit trail for registry mutations.

# Events

Two event types exist, mirroring the two mutations:

	ELECTION_CREATED  election name, candidate count, strict flag
	VOTED             voter, election name, candidate name

Events are immutable, carry a uuid and the registry's clock reading, and
are emitted in commit order.

# Recorders

Recorder is the subscription point. Shipped implementations:

  - LogRecorder: structured process log
  - Store: database/sql append-only persistence (audit_event table)
  - MultiRecorder: fan-out to several recorders
  - Discard: drops everything (tests, bare registries)

Recorders handle their own failures; a failing sink never fails the
operation that produced the event.
*/
package audit
