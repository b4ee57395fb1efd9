// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/alkautsarf/elecTrust-v2/middleware"
	"github.com/alkautsarf/elecTrust-v2/registry"
)

// statusForRegistryError maps the registry error taxonomy onto HTTP codes.
func statusForRegistryError(err error) int {
	switch err {
	case registry.ErrElectionNotFound, registry.ErrCandidateNotFound:
		return http.StatusNotFound
	case registry.ErrHasVoted, registry.ErrVotingEnd:
		return http.StatusConflict
	case registry.ErrUnauthorizedVoter:
		return http.StatusForbidden
	case registry.ErrInvalidName, registry.ErrInvalidCandidateName, registry.ErrInvalidCandidateIndex:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// registryErrorResponse writes the mapped status plus the machine code for a
// registry error.
func registryErrorResponse(w http.ResponseWriter, err error) {
	middleware.DomainErrorResponse(w, statusForRegistryError(err), registry.Code(err), err.Error())
}
