// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/electchain/server/cliparse"
	"github.com/electchain/server/election"
	"github.com/electchain/server/middleware"
)

type ResultsHandler struct {
	core *election.Core
	cfg  cliparse.Config
}

func NewResultsHandler(core *election.Core, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{core: core, cfg: cfg}
}

// GetElection handles GET /election: current status, voting window,
// and results visibility. Public so portals can render state without
// credentials.
func (h *ResultsHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	e, err := h.core.GetElection()
	if err != nil {
		writeCoreError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, e)
}

// GetResults handles GET /results. Gated on the results visibility
// flag; returns 403 RESULTS_HIDDEN until an admin publishes.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	resp, err := h.core.Results()
	if err != nil {
		writeCoreError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}
