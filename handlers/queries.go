// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/alkautsarf/elecTrust-v2/cliparse"
	"github.com/alkautsarf/elecTrust-v2/middleware"
	"github.com/alkautsarf/elecTrust-v2/models"
	"github.com/alkautsarf/elecTrust-v2/registry"
)

// QueryHandler serves the pure read surface: candidates, per-voter flags
// and ranked results. All lookups are side-effect free.
type QueryHandler struct {
	reg *registry.Registry
	cfg cliparse.Config
}

func NewQueryHandler(reg *registry.Registry, cfg cliparse.Config) *QueryHandler {
	return &QueryHandler{reg: reg, cfg: cfg}
}

// GetCandidate handles GET /elections/{index}/candidates/{candidate}
func (h *QueryHandler) GetCandidate(w http.ResponseWriter, r *http.Request) {
	index, ok := electionIndexFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election index must be an integer")
		return
	}
	candidateIndex, err := strconv.Atoi(r.PathValue("candidate"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate index must be an integer")
		return
	}

	cand, err := h.reg.GetCandidate(index, candidateIndex)
	if err != nil {
		registryErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CandidateResponse{
		CandidateIndex: candidateIndex,
		Name:           cand.Name,
		VoteCount:      cand.VoteCount,
	})
}

// GetHasVoted handles GET /elections/{index}/voters/{voter}
// Voter flags are not secret; any caller may check any principal.
func (h *QueryHandler) GetHasVoted(w http.ResponseWriter, r *http.Request) {
	index, ok := electionIndexFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election index must be an integer")
		return
	}
	voter := r.PathValue("voter")
	if voter == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter is required")
		return
	}

	voted, err := h.reg.GetHasVoted(index, registry.Principal(voter))
	if err != nil {
		registryErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HasVotedResponse{
		ElectionIndex: index,
		Voter:         voter,
		HasVoted:      voted,
	})
}

// GetResults handles GET /elections/{index}/results
func (h *QueryHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	index, ok := electionIndexFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election index must be an integer")
		return
	}

	info, err := h.reg.GetElectionInfo(index)
	if err != nil {
		registryErrorResponse(w, err)
		return
	}

	standings, err := ComputeStandings(h.reg, index)
	if err != nil {
		registryErrorResponse(w, err)
		return
	}

	var total uint64
	for _, s := range standings {
		total += s.VoteCount
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		ElectionIndex: index,
		ElectionName:  info.Name,
		TotalVotes:    total,
		Standings:     standings,
	})
}
