// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alkautsarf/elecTrust-v2/audit"
	"github.com/alkautsarf/elecTrust-v2/cliparse"
	"github.com/alkautsarf/elecTrust-v2/handlers"
	"github.com/alkautsarf/elecTrust-v2/metrics"
	"github.com/alkautsarf/elecTrust-v2/middleware"
	"github.com/alkautsarf/elecTrust-v2/registry"
)

func NewRouter(reg *registry.Registry, db *sql.DB, store *audit.Store, m *metrics.Metrics, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	electionHandler := handlers.NewElectionHandler(reg, cfg)
	votingHandler := handlers.NewVotingHandler(reg, db, m, cfg)
	queryHandler := handlers.NewQueryHandler(reg, cfg)
	principalHandler := handlers.NewPrincipalHandler(db, store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Election management
	mux.HandleFunc("POST /elections", middleware.WithLogging(electionHandler.CreateElection))
	mux.HandleFunc("GET /elections", middleware.WithLogging(electionHandler.GetElectionCount))
	mux.HandleFunc("GET /elections/{index}", middleware.WithLogging(electionHandler.GetElectionInfo))

	// Voting operations (principal token required)
	mux.HandleFunc("POST /elections/{index}/votes", middleware.WithLogging(votingHandler.Vote))
	mux.HandleFunc("GET /elections/{index}/my-vote", middleware.WithLogging(votingHandler.GetMyVoteStatus))

	// Read queries
	mux.HandleFunc("GET /elections/{index}/candidates/{candidate}", middleware.WithLogging(queryHandler.GetCandidate))
	mux.HandleFunc("GET /elections/{index}/voters/{voter}", middleware.WithLogging(queryHandler.GetHasVoted))
	mux.HandleFunc("GET /elections/{index}/results", middleware.WithLogging(queryHandler.GetResults))

	// Principal directory
	mux.HandleFunc("POST /principals", middleware.WithLogging(principalHandler.Register))
	mux.HandleFunc("GET /principals/me", middleware.WithLogging(principalHandler.GetMe))
	mux.HandleFunc("GET /principals/me/votes", middleware.WithLogging(principalHandler.GetMyVotes))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("elecTrust API v2"))
	})

	return mux
}
