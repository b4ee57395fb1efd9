// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes Prometheus counters for registry activity.

Accepted mutations are counted by subscribing Metrics to the audit trail:

	m := metrics.New("electrust")
	reg := registry.New(time.Now, audit.MultiRecorder{m, ...})

Rejected votes are counted by the HTTP layer with the registry error code
as the reason label. Collectors are served on GET /metrics by the router.
*/
package metrics
