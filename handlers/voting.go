// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/alkautsarf/elecTrust-v2/auth"
	"github.com/alkautsarf/elecTrust-v2/cliparse"
	"github.com/alkautsarf/elecTrust-v2/metrics"
	"github.com/alkautsarf/elecTrust-v2/middleware"
	"github.com/alkautsarf/elecTrust-v2/models"
	"github.com/alkautsarf/elecTrust-v2/registry"
)

type VotingHandler struct {
	reg *registry.Registry
	db  *sql.DB
	m   *metrics.Metrics
	cfg cliparse.Config
}

func NewVotingHandler(reg *registry.Registry, db *sql.DB, m *metrics.Metrics, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{reg: reg, db: db, m: m, cfg: cfg}
}

// callerPrincipal resolves the X-Voter-Token header to a principal ID.
// Writes the error response itself and returns false if the token is
// missing or invalid.
func callerPrincipal(w http.ResponseWriter, r *http.Request, salt string) (string, bool) {
	token := r.Header.Get("X-Voter-Token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Voter-Token header required")
		return "", false
	}
	principal, err := auth.VerifyPrincipalToken(token, salt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid voter token")
		return "", false
	}
	return principal, true
}

// Vote handles POST /elections/{index}/votes
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	index, ok := electionIndexFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election index must be an integer")
		return
	}

	principal, ok := callerPrincipal(w, r, h.cfg.VoterTokenSalt)
	if !ok {
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.reg.Vote(registry.Principal(principal), index, req.CandidateIndex); err != nil {
		if h.m != nil {
			h.m.VoteRejected(registry.Code(err))
		}
		registryErrorResponse(w, err)
		return
	}

	// Refresh the principal's last-seen timestamp. Non-fatal: the vote is
	// already committed.
	if _, err := h.db.Exec(`
		UPDATE principal SET last_seen_at = $1 WHERE id = $2
	`, time.Now(), principal); err != nil {
		slog.Warn("failed to update principal last_seen_at", "error", err, "principal", principal)
	}

	slog.Info("vote accepted",
		"election_index", index,
		"candidate_index", req.CandidateIndex,
		"principal", principal,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
		ElectionIndex:  index,
		CandidateIndex: req.CandidateIndex,
		Message:        "Vote recorded",
	})
}

// GetMyVoteStatus handles GET /elections/{index}/my-vote
// Resolves the caller from the voter token and reports their hasVoted flag.
func (h *VotingHandler) GetMyVoteStatus(w http.ResponseWriter, r *http.Request) {
	index, ok := electionIndexFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election index must be an integer")
		return
	}

	principal, ok := callerPrincipal(w, r, h.cfg.VoterTokenSalt)
	if !ok {
		return
	}

	voted, err := h.reg.GetHasVoted(index, registry.Principal(principal))
	if err != nil {
		registryErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HasVotedResponse{
		ElectionIndex: index,
		Voter:         principal,
		HasVoted:      voted,
	})
}
