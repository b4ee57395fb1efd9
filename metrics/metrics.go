// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/alkautsarf/elecTrust-v2/audit"
)

// Metrics holds the Prometheus collectors for the election registry. It
// implements audit.Recorder for the accept-side counters; handlers feed the
// rejection counter directly with the registry error code as the reason.
type Metrics struct {
	electionsCreated prometheus.Counter
	votesCast        prometheus.Counter
	votesRejected    *prometheus.CounterVec
}

// New creates and registers the collectors with the default Prometheus
// registry.
func New(namespace string) *Metrics {
	return NewWith(prometheus.DefaultRegisterer, namespace)
}

// NewWith creates the collectors and registers them with reg. A nil reg
// skips registration.
func NewWith(reg prometheus.Registerer, namespace string) *Metrics {
	m := &Metrics{
		electionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "elections_created_total",
			Help:      "Number of elections created",
		}),
		votesCast: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "votes_cast_total",
			Help:      "Number of accepted votes",
		}),
		votesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "votes_rejected_total",
			Help:      "Number of rejected votes by rejection reason",
		},
			[]string{"reason"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.electionsCreated)
		reg.MustRegister(m.votesCast)
		reg.MustRegister(m.votesRejected)
	}
	return m
}

// Record implements audit.Recorder.
func (m *Metrics) Record(e audit.Event) {
	switch e.Type {
	case audit.TypeElectionCreated:
		m.electionsCreated.Inc()
	case audit.TypeVoted:
		m.votesCast.Inc()
	}
}

// VotesRejectedCounter returns the rejection counter for one reason label.
// Mostly useful for assertions in tests.
func (m *Metrics) VotesRejectedCounter(reason string) prometheus.Counter {
	return m.votesRejected.WithLabelValues(reason)
}

// VoteRejected counts one rejected vote attempt under the given reason.
func (m *Metrics) VoteRejected(reason string) {
	if reason == "" {
		reason = "UNKNOWN"
	}
	m.votesRejected.WithLabelValues(reason).Inc()
}
