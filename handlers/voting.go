// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/electchain/server/auth"
	"github.com/electchain/server/cliparse"
	"github.com/electchain/server/election"
	"github.com/electchain/server/middleware"
	"github.com/electchain/server/models"
)

type VotingHandler struct {
	core *election.Core
	cfg  cliparse.Config
}

func NewVotingHandler(core *election.Core, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{core: core, cfg: cfg}
}

// GetBallot handles GET /election/ballot: the approved candidates
// grouped by position. Public; the ballot itself is not a secret.
func (h *VotingHandler) GetBallot(w http.ResponseWriter, r *http.Request) {
	ballot, err := h.core.Ballot()
	if err != nil {
		writeCoreError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, ballot)
}

// CastVote handles POST /votes. The voter is identified by the
// X-Voter-Token session token, never by a body field, so one voter
// cannot spend another's ballot.
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-Voter-Token")
	voterID, err := auth.ParseSessionToken(token, models.RoleVoter, h.cfg.SessionTokenSalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid voter token")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.CandidateID == "" {
		middleware.CodedErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", "candidateId is required")
		return
	}

	meta := election.VoteMeta{
		IPHash:    auth.HashIP(middleware.GetClientIP(r), h.cfg.SessionTokenSalt),
		UserAgent: r.UserAgent(),
	}

	if err := h.core.CastVote(voterID, req.CandidateID, meta); err != nil {
		switch {
		case errors.Is(err, election.ErrAlreadyVoted):
			votesRejectedTotal.WithLabelValues("already_voted").Inc()
		case errors.Is(err, election.ErrCandidateNotEligible):
			votesRejectedTotal.WithLabelValues("candidate_not_eligible").Inc()
		case errors.Is(err, election.ErrVotingClosed):
			votesRejectedTotal.WithLabelValues("voting_closed").Inc()
		}
		writeCoreError(w, err)
		return
	}

	slog.Info("vote cast", "voter_id", voterID)
	votesCastTotal.Inc()

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		VoterID: voterID,
		Message: "Vote recorded",
	})
}

// HasVoted handles GET /votes/status for the logged-in voter.
func (h *VotingHandler) HasVoted(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-Voter-Token")
	voterID, err := auth.ParseSessionToken(token, models.RoleVoter, h.cfg.SessionTokenSalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid voter token")
		return
	}

	voted, err := h.core.HasVoted(voterID)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, map[string]bool{"hasVoted": voted})
}
