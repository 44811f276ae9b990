// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/electchain/server/auth"
	"github.com/electchain/server/cliparse"
	"github.com/electchain/server/election"
	"github.com/electchain/server/middleware"
	"github.com/electchain/server/models"
)

type AuthHandler struct {
	core *election.Core
	cfg  cliparse.Config
}

func NewAuthHandler(core *election.Core, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{core: core, cfg: cfg}
}

// Login handles POST /login for all three roles. Voters and candidates
// authenticate against stored credentials; the admin authenticates
// against the configured admin account and receives an admin key
// instead of a session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		middleware.CodedErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", "email and password are required")
		return
	}

	switch req.Role {
	case models.RoleAdmin:
		h.loginAdmin(w, req)
	case models.RoleVoter, models.RoleCandidate:
		h.loginEntity(w, req)
	default:
		middleware.CodedErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", "role must be voter, candidate, or admin")
	}
}

func (h *AuthHandler) loginAdmin(w http.ResponseWriter, req models.LoginRequest) {
	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(h.cfg.AdminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AdminPassword)) == 1
	if !emailOK || !passOK {
		loginsTotal.WithLabelValues(models.RoleAdmin, "failure").Inc()
		writeCoreError(w, election.ErrInvalidCredentials)
		return
	}

	slog.Info("admin logged in")
	loginsTotal.WithLabelValues(models.RoleAdmin, "success").Inc()

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Role:  models.RoleAdmin,
		Token: auth.GenerateAdminKey(h.cfg.AdminEmail, h.cfg.AdminKeySalt),
	})
}

func (h *AuthHandler) loginEntity(w http.ResponseWriter, req models.LoginRequest) {
	entityID, err := h.core.Authenticate(req.Email, req.Password, req.Role)
	if err != nil {
		loginsTotal.WithLabelValues(req.Role, "failure").Inc()
		writeCoreError(w, err)
		return
	}

	resp := models.LoginResponse{
		Role:  req.Role,
		Token: auth.GenerateSessionToken(entityID, req.Role, h.cfg.SessionTokenSalt),
	}

	switch req.Role {
	case models.RoleVoter:
		v, err := h.core.GetVoter(entityID)
		if err != nil {
			writeCoreError(w, err)
			return
		}
		resp.Voter = &v
	case models.RoleCandidate:
		c, err := h.core.GetCandidate(entityID)
		if err != nil {
			writeCoreError(w, err)
			return
		}
		resp.Candidate = &c
	}

	slog.Info("login succeeded", "role", req.Role, "entity_id", entityID)
	loginsTotal.WithLabelValues(req.Role, "success").Inc()

	middleware.JSONResponse(w, http.StatusOK, resp)
}
