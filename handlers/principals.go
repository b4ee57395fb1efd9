// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/alkautsarf/elecTrust-v2/audit"
	"github.com/alkautsarf/elecTrust-v2/auth"
	"github.com/alkautsarf/elecTrust-v2/cliparse"
	"github.com/alkautsarf/elecTrust-v2/middleware"
	"github.com/alkautsarf/elecTrust-v2/models"
)

// PrincipalHandler manages the principal directory: registration, identity
// lookup, and the caller's audit-backed voting history.
type PrincipalHandler struct {
	db    *sql.DB
	store *audit.Store
	cfg   cliparse.Config
}

func NewPrincipalHandler(db *sql.DB, store *audit.Store, cfg cliparse.Config) *PrincipalHandler {
	return &PrincipalHandler{db: db, store: store, cfg: cfg}
}

// Register handles POST /principals
// The body is optional; an empty body registers an anonymous principal.
func (h *PrincipalHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterPrincipalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	principalID, err := auth.GenerateID(12)
	if err != nil {
		slog.Error("failed to generate principal ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register principal")
		return
	}
	token := auth.MintPrincipalToken(principalID, h.cfg.VoterTokenSalt)

	now := time.Now()
	_, err = h.db.Exec(`
		INSERT INTO principal (id, display_name, created_at, last_seen_at)
		VALUES ($1, $2, $3, $4)
	`, principalID, req.DisplayName, now, now)
	if err != nil {
		slog.Error("failed to insert principal", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register principal")
		return
	}

	slog.Info("principal registered", "principal", principalID)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterPrincipalResponse{
		Principal:  principalID,
		VoterToken: token,
	})
}

// GetMe handles GET /principals/me
func (h *PrincipalHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	principal, ok := callerPrincipal(w, r, h.cfg.VoterTokenSalt)
	if !ok {
		return
	}

	var resp models.PrincipalResponse
	err := h.db.QueryRow(`
		SELECT id, display_name, created_at, last_seen_at
		FROM principal
		WHERE id = $1
	`, principal).Scan(&resp.Principal, &resp.DisplayName, &resp.CreatedAt, &resp.LastSeenAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Principal not registered")
		return
	}
	if err != nil {
		slog.Error("failed to query principal", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetMyVotes handles GET /principals/me/votes
// Reads the caller's VOTED events back out of the persisted audit trail.
func (h *PrincipalHandler) GetMyVotes(w http.ResponseWriter, r *http.Request) {
	principal, ok := callerPrincipal(w, r, h.cfg.VoterTokenSalt)
	if !ok {
		return
	}

	events, err := h.store.VoterEvents(principal)
	if err != nil {
		slog.Error("failed to query voter events", "error", err, "principal", principal)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	votes := make([]models.VotedRecord, 0, len(events))
	for _, e := range events {
		votes = append(votes, models.VotedRecord{
			ElectionName:  e.ElectionName,
			CandidateName: e.CandidateName,
			VotedAt:       e.Timestamp,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.MyVotesResponse{
		Principal: principal,
		Votes:     votes,
	})
}
