// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/electchain/server/cliparse"
	"github.com/electchain/server/election"
	"github.com/electchain/server/middleware"
	"github.com/electchain/server/models"
)

type RegistrationHandler struct {
	core *election.Core
	cfg  cliparse.Config
}

func NewRegistrationHandler(core *election.Core, cfg cliparse.Config) *RegistrationHandler {
	return &RegistrationHandler{core: core, cfg: cfg}
}

// RegisterVoter handles POST /voters
func (h *RegistrationHandler) RegisterVoter(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	voterID, err := h.core.RegisterVoter(req)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	slog.Info("voter registered", "voter_id", voterID)
	registrationsTotal.WithLabelValues(models.RoleVoter).Inc()

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterVoterResponse{
		VoterID: voterID,
	})
}

// RegisterCandidate handles POST /candidates
func (h *RegistrationHandler) RegisterCandidate(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	candidateID, err := h.core.RegisterCandidate(req)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	slog.Info("candidacy submitted", "candidate_id", candidateID, "position", req.Position)
	registrationsTotal.WithLabelValues(models.RoleCandidate).Inc()

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterCandidateResponse{
		CandidateID: candidateID,
	})
}
