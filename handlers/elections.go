// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alkautsarf/elecTrust-v2/cliparse"
	"github.com/alkautsarf/elecTrust-v2/middleware"
	"github.com/alkautsarf/elecTrust-v2/models"
	"github.com/alkautsarf/elecTrust-v2/registry"
)

type ElectionHandler struct {
	reg *registry.Registry
	cfg cliparse.Config
}

func NewElectionHandler(reg *registry.Registry, cfg cliparse.Config) *ElectionHandler {
	return &ElectionHandler{reg: reg, cfg: cfg}
}

// electionIndexFromPath parses the {index} path segment. A non-numeric
// segment is a transport error, not a registry lookup.
func electionIndexFromPath(r *http.Request) (int, bool) {
	idx, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		return 0, false
	}
	return idx, true
}

// CreateElection handles POST /elections
func (h *ElectionHandler) CreateElection(w http.ResponseWriter, r *http.Request) {
	var req models.CreateElectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	eligible := make([]registry.Principal, 0, len(req.EligibleVoters))
	for _, v := range req.EligibleVoters {
		eligible = append(eligible, registry.Principal(v))
	}

	index, err := h.reg.CreateElection(req.Name, req.Candidates, eligible, req.DurationSeconds)
	if err != nil {
		registryErrorResponse(w, err)
		return
	}

	slog.Info("election created",
		"election_index", index,
		"name", req.Name,
		"total_candidates", len(req.Candidates),
		"strict_voters", len(eligible) > 0,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateElectionResponse{
		ElectionIndex: index,
	})
}

// GetElectionCount handles GET /elections
func (h *ElectionHandler) GetElectionCount(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ElectionCountResponse{
		Count: h.reg.GetElectionCount(),
	})
}

// GetElectionInfo handles GET /elections/{index}
func (h *ElectionHandler) GetElectionInfo(w http.ResponseWriter, r *http.Request) {
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

	middleware.JSONResponse(w, http.StatusOK, models.ElectionInfoResponse{
		ElectionIndex:   index,
		Name:            info.Name,
		StartTime:       info.StartTime,
		DurationSeconds: info.Duration,
		TotalCandidates: info.TotalCandidates,
		StrictVoters:    info.StrictVoters,
	})
}
