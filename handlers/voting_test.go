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

func TestCastVoteHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(election.NewCore(db), cfg)

	testutil.OpenElection(t, db)
	voterID := testutil.CreateTestVoter(t, db, "ada@test.edu", "pw")
	candID := testutil.CreateTestCandidate(t, db, "Grace Hopper", "Treasurer", models.CandidacyApproved)
	token := auth.GenerateSessionToken(voterID, models.RoleVoter, cfg.SessionTokenSalt)

	tests := []struct {
		name           string
		token          string
		candidateID    string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "missing token",
			token:          "",
			candidateID:    candID,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "tampered token",
			token:          token + "x",
			candidateID:    candID,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing candidate id",
			token:          token,
			candidateID:    "",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "unknown candidate",
			token:          token,
			candidateID:    "no-such-candidate",
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "CANDIDATE_NOT_ELIGIBLE",
		},
		{
			name:           "valid vote",
			token:          token,
			candidateID:    candID,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "second vote rejected",
			token:          token,
			candidateID:    candID,
			expectedStatus: http.StatusConflict,
			expectedCode:   "ALREADY_VOTED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/votes",
				models.CastVoteRequest{CandidateID: tt.candidateID},
				map[string]string{"X-Voter-Token": tt.token})
			w := httptest.NewRecorder()
			handler.CastVote(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedCode != "" {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Code != tt.expectedCode {
					t.Errorf("Expected code %s, got %s", tt.expectedCode, resp.Code)
				}
			}
		})
	}

	// The ballot marker stores a hashed IP, never the raw address
	var ipHash string
	if err := db.QueryRow(`SELECT ip_hash FROM ballot WHERE voter_id = $1`, voterID).Scan(&ipHash); err != nil {
		t.Fatalf("Failed to query ballot: %v", err)
	}
	if ipHash == "" || ipHash == "192.0.2.1" {
		t.Errorf("Expected hashed IP, got %q", ipHash)
	}
}

func TestCastVoteHandler_VotingClosed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(election.NewCore(db), cfg)

	// Election never activated
	voterID := testutil.CreateTestVoter(t, db, "ada@test.edu", "pw")
	candID := testutil.CreateTestCandidate(t, db, "Grace Hopper", "Treasurer", models.CandidacyApproved)
	token := auth.GenerateSessionToken(voterID, models.RoleVoter, cfg.SessionTokenSalt)

	req := testutil.MakeRequest("POST", "/votes",
		models.CastVoteRequest{CandidateID: candID},
		map[string]string{"X-Voter-Token": token})
	w := httptest.NewRecorder()
	handler.CastVote(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Code != "VOTING_CLOSED" {
		t.Errorf("Expected VOTING_CLOSED, got %s", resp.Code)
	}
}

func TestGetBallotHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(election.NewCore(db), cfg)

	testutil.CreateTestCandidate(t, db, "Grace Hopper", "Treasurer", models.CandidacyApproved)
	testutil.CreateTestCandidate(t, db, "Pending One", "Treasurer", models.CandidacyPending)

	req := testutil.MakeRequest("GET", "/election/ballot", nil, nil)
	w := httptest.NewRecorder()
	handler.GetBallot(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var ballot models.BallotResponse
	testutil.AssertJSON(t, w, &ballot)
	if len(ballot.Positions) != 1 {
		t.Fatalf("Expected 1 position on ballot, got %d", len(ballot.Positions))
	}
	if len(ballot.Positions[0].Candidates) != 1 {
		t.Errorf("Pending candidates must not appear on the ballot")
	}
}

func TestHasVotedHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(election.NewCore(db), cfg)

	testutil.OpenElection(t, db)
	voterID := testutil.CreateTestVoter(t, db, "ada@test.edu", "pw")
	candID := testutil.CreateTestCandidate(t, db, "Grace Hopper", "Treasurer", models.CandidacyApproved)
	token := auth.GenerateSessionToken(voterID, models.RoleVoter, cfg.SessionTokenSalt)

	check := func(want bool) {
		t.Helper()
		req := testutil.MakeRequest("GET", "/votes/status", nil,
			map[string]string{"X-Voter-Token": token})
		w := httptest.NewRecorder()
		handler.HasVoted(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp map[string]bool
		testutil.AssertJSON(t, w, &resp)
		if resp["hasVoted"] != want {
			t.Errorf("Expected hasVoted=%v", want)
		}
	}

	check(false)

	req := testutil.MakeRequest("POST", "/votes",
		models.CastVoteRequest{CandidateID: candID},
		map[string]string{"X-Voter-Token": token})
	w := httptest.NewRecorder()
	handler.CastVote(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	check(true)
}
