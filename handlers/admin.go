// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/electchain/server/auth"
	"github.com/electchain/server/cliparse"
	"github.com/electchain/server/election"
	"github.com/electchain/server/middleware"
	"github.com/electchain/server/models"
)

type AdminHandler struct {
	core *election.Core
	cfg  cliparse.Config
}

func NewAdminHandler(core *election.Core, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{core: core, cfg: cfg}
}

// requireAdmin validates the X-Admin-Key header. Returns false after
// writing the response when the key is missing or wrong.
func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	key := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(h.cfg.AdminEmail, key, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return false
	}
	return true
}

// ListCandidates handles GET /admin/candidates?status=pending
func (h *AdminHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	status := r.URL.Query().Get("status")
	if status != "" && status != models.CandidacyPending &&
		status != models.CandidacyApproved && status != models.CandidacyRejected {
		middleware.CodedErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", "unknown status filter")
		return
	}

	candidates, err := h.core.ListCandidates(status)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	if candidates == nil {
		candidates = []models.Candidate{}
	}

	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// ModerateCandidate handles POST /admin/candidates/{id}/decision
func (h *AdminHandler) ModerateCandidate(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	candidateID := r.PathValue("id")
	if candidateID == "" {
		middleware.CodedErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", "candidate id is required")
		return
	}

	var req models.ModerateCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.core.SetCandidacyStatus(candidateID, req.Decision); err != nil {
		writeCoreError(w, err)
		return
	}

	slog.Info("candidacy moderated", "candidate_id", candidateID, "decision", req.Decision)

	cand, err := h.core.GetCandidate(candidateID)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, cand)
}

// ToggleElection handles POST /admin/election/toggle
func (h *AdminHandler) ToggleElection(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	status, err := h.core.ToggleStatus()
	if err != nil {
		writeCoreError(w, err)
		return
	}

	slog.Info("election status toggled", "status", status)
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"status": status})
}

// SetWindow handles PUT /admin/election/window
func (h *AdminHandler) SetWindow(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.SetWindowRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Start == nil || req.End == nil {
		middleware.CodedErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", "start and end are required")
		return
	}

	if err := h.core.SetVotingWindow(*req.Start, *req.End); err != nil {
		writeCoreError(w, err)
		return
	}

	slog.Info("voting window set", "start", req.Start, "end", req.End)

	e, err := h.core.GetElection()
	if err != nil {
		writeCoreError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, e)
}

// SetResultsVisible handles PUT /admin/election/results-visible
func (h *AdminHandler) SetResultsVisible(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.SetResultsVisibleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.core.SetResultsVisible(req.Visible); err != nil {
		writeCoreError(w, err)
		return
	}

	slog.Info("results visibility set", "visible", req.Visible)
	middleware.JSONResponse(w, http.StatusOK, map[string]bool{"resultsVisible": req.Visible})
}

// Stats handles GET /admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	s, err := h.core.Stats()
	if err != nil {
		writeCoreError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, s)
}

// PreviewResults handles GET /admin/results. Same payload as the
// public results endpoint, without the visibility gate.
func (h *AdminHandler) PreviewResults(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	resp, err := h.core.Preview()
	if err != nil {
		writeCoreError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}
