// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/electchain/server/auth"
	"github.com/electchain/server/election"
	"github.com/electchain/server/models"
	"github.com/electchain/server/testutil"
)

func TestGetElectionHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(election.NewCore(db), cfg)

	req := testutil.MakeRequest("GET", "/election", nil, nil)
	w := httptest.NewRecorder()
	handler.GetElection(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var e models.Election
	testutil.AssertJSON(t, w, &e)
	if e.Status != models.ElectionInactive {
		t.Errorf("Expected inactive, got %s", e.Status)
	}
	if e.ResultsVisible {
		t.Error("Results must start hidden")
	}
}

func TestGetResultsHandler_Gate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	core := election.NewCore(db)
	handler := NewResultsHandler(core, cfg)

	req := testutil.MakeRequest("GET", "/results", nil, nil)
	w := httptest.NewRecorder()
	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusForbidden)

	var errResp models.ErrorResponse
	testutil.AssertJSON(t, w, &errResp)
	if errResp.Code != "RESULTS_HIDDEN" {
		t.Errorf("Expected RESULTS_HIDDEN, got %s", errResp.Code)
	}

	testutil.SetResultsVisible(t, db, true)

	req = testutil.MakeRequest("GET", "/results", nil, nil)
	w = httptest.NewRecorder()
	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Results) != len(models.Positions) {
		t.Errorf("Expected %d positions, got %d", len(models.Positions), len(resp.Results))
	}
}

func TestPreviewResultsHandler_BypassesGate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(election.NewCore(db), cfg)
	key := auth.GenerateAdminKey(cfg.AdminEmail, cfg.AdminKeySalt)

	// Results hidden, preview still works
	req := testutil.MakeRequest("GET", "/admin/results", nil,
		map[string]string{"X-Admin-Key": key})
	w := httptest.NewRecorder()
	handler.PreviewResults(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
}
