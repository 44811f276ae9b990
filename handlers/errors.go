// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/electchain/server/election"
	"github.com/electchain/server/middleware"
)

// writeCoreError maps a domain error from election.Core to an HTTP
// response with a stable machine-readable code. Anything unmapped is a
// 500 and gets logged; the mapped conditions are expected outcomes and
// do not.
func writeCoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, election.ErrValidation):
		middleware.CodedErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, election.ErrDuplicateEmail):
		middleware.CodedErrorResponse(w, http.StatusConflict, "DUPLICATE_EMAIL", "Email is already registered")
	case errors.Is(err, election.ErrInvalidCredentials):
		middleware.CodedErrorResponse(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	case errors.Is(err, election.ErrNotFound):
		middleware.CodedErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "Not found")
	case errors.Is(err, election.ErrAlreadyVoted):
		middleware.CodedErrorResponse(w, http.StatusConflict, "ALREADY_VOTED", "This voter has already cast a ballot")
	case errors.Is(err, election.ErrCandidateNotEligible):
		middleware.CodedErrorResponse(w, http.StatusUnprocessableEntity, "CANDIDATE_NOT_ELIGIBLE", "Candidate is not on the ballot")
	case errors.Is(err, election.ErrVotingClosed):
		middleware.CodedErrorResponse(w, http.StatusConflict, "VOTING_CLOSED", "Voting is not open")
	case errors.Is(err, election.ErrResultsHidden):
		middleware.CodedErrorResponse(w, http.StatusForbidden, "RESULTS_HIDDEN", "Results have not been published")
	case errors.Is(err, election.ErrInvalidRange):
		middleware.CodedErrorResponse(w, http.StatusBadRequest, "INVALID_RANGE", "Window end must be after start")
	default:
		slog.Error("unexpected core error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
