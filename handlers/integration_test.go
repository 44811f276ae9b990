// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/electchain/server/election"
	"github.com/electchain/server/models"
	"github.com/electchain/server/testutil"
)

// TestFullElectionWorkflow tests the complete end-to-end workflow:
// 1. Voters register
// 2. Candidates submit candidacies
// 3. Admin logs in, approves one candidacy, rejects another
// 4. Admin sets the voting window and opens the election
// 5. Voters log in and cast ballots
// 6. A repeat vote is refused
// 7. Results stay hidden until the admin publishes
// 8. Published results carry counts and percentages
func TestFullElectionWorkflow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	core := election.NewCore(db)

	registrationHandler := NewRegistrationHandler(core, cfg)
	authHandler := NewAuthHandler(core, cfg)
	adminHandler := NewAdminHandler(core, cfg)
	votingHandler := NewVotingHandler(core, cfg)
	resultsHandler := NewResultsHandler(core, cfg)

	// Step 1: Register three voters
	voterTokens := make([]string, 0, 3)
	for _, email := range []string{"a@test.edu", "b@test.edu", "c@test.edu"} {
		body := validVoterRequest()
		body.Email = email
		req := testutil.MakeRequest("POST", "/voters", body, nil)
		w := httptest.NewRecorder()
		registrationHandler.RegisterVoter(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("Step 1 - Register voter failed: %d - %s", w.Code, w.Body.String())
		}

		// Log the voter in for a session token
		req = testutil.MakeRequest("POST", "/login", models.LoginRequest{
			Email:    email,
			Password: body.Password,
			Role:     models.RoleVoter,
		}, nil)
		w = httptest.NewRecorder()
		authHandler.Login(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Step 1 - Voter login failed: %d - %s", w.Code, w.Body.String())
		}
		var login models.LoginResponse
		json.NewDecoder(w.Body).Decode(&login)
		voterTokens = append(voterTokens, login.Token)
	}
	t.Logf("Step 1 - Registered and logged in %d voters", len(voterTokens))

	// Step 2: Two candidacies for Treasurer
	candidateIDs := make([]string, 0, 2)
	for _, name := range []string{"Grace Hopper", "Alan Turing"} {
		body := validCandidateRequest()
		body.FullName = name
		body.Email = name + "@test.edu"
		req := testutil.MakeRequest("POST", "/candidates", body, nil)
		w := httptest.NewRecorder()
		registrationHandler.RegisterCandidate(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("Step 2 - Register candidate failed: %d - %s", w.Code, w.Body.String())
		}
		var resp models.RegisterCandidateResponse
		json.NewDecoder(w.Body).Decode(&resp)
		candidateIDs = append(candidateIDs, resp.CandidateID)
	}

	// Step 3: Admin logs in, approves the first, rejects the second
	req := testutil.MakeRequest("POST", "/login", models.LoginRequest{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Role:     models.RoleAdmin,
	}, nil)
	w := httptest.NewRecorder()
	authHandler.Login(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 3 - Admin login failed: %d - %s", w.Code, w.Body.String())
	}
	var adminLogin models.LoginResponse
	json.NewDecoder(w.Body).Decode(&adminLogin)
	adminHeader := map[string]string{"X-Admin-Key": adminLogin.Token}

	decisions := []string{models.DecisionApprove, models.DecisionReject}
	for i, candID := range candidateIDs {
		req = testutil.MakeRequest("POST", "/admin/candidates/"+candID+"/decision",
			models.ModerateCandidateRequest{Decision: decisions[i]}, adminHeader)
		req.SetPathValue("id", candID)
		w = httptest.NewRecorder()
		adminHandler.ModerateCandidate(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Step 3 - Moderation failed: %d - %s", w.Code, w.Body.String())
		}
	}

	// Step 4: Set the window and activate
	start := time.Now().Add(-time.Hour)
	end := time.Now().Add(time.Hour)
	req = testutil.MakeRequest("PUT", "/admin/election/window",
		models.SetWindowRequest{Start: &start, End: &end}, adminHeader)
	w = httptest.NewRecorder()
	adminHandler.SetWindow(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 4 - Set window failed: %d - %s", w.Code, w.Body.String())
	}

	req = testutil.MakeRequest("POST", "/admin/election/toggle", nil, adminHeader)
	w = httptest.NewRecorder()
	adminHandler.ToggleElection(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 4 - Toggle failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 5: Only the approved candidate is on the ballot
	req = testutil.MakeRequest("GET", "/election/ballot", nil, nil)
	w = httptest.NewRecorder()
	votingHandler.GetBallot(w, req)
	var ballot models.BallotResponse
	json.NewDecoder(w.Body).Decode(&ballot)
	if len(ballot.Positions) != 1 || len(ballot.Positions[0].Candidates) != 1 {
		t.Fatalf("Step 5 - Expected 1 approved candidate on ballot, got %+v", ballot)
	}
	approvedID := ballot.Positions[0].Candidates[0].ID

	// All three voters vote for the approved candidate
	for i, token := range voterTokens {
		req = testutil.MakeRequest("POST", "/votes",
			models.CastVoteRequest{CandidateID: approvedID},
			map[string]string{"X-Voter-Token": token})
		w = httptest.NewRecorder()
		votingHandler.CastVote(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("Step 5 - Vote %d failed: %d - %s", i, w.Code, w.Body.String())
		}
	}

	// Step 6: A repeat vote is refused
	req = testutil.MakeRequest("POST", "/votes",
		models.CastVoteRequest{CandidateID: approvedID},
		map[string]string{"X-Voter-Token": voterTokens[0]})
	w = httptest.NewRecorder()
	votingHandler.CastVote(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("Step 6 - Expected 409 for repeat vote, got %d", w.Code)
	}

	// Step 7: Results hidden until published
	req = testutil.MakeRequest("GET", "/results", nil, nil)
	w = httptest.NewRecorder()
	resultsHandler.GetResults(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("Step 7 - Expected 403 before publishing, got %d", w.Code)
	}

	req = testutil.MakeRequest("PUT", "/admin/election/results-visible",
		models.SetResultsVisibleRequest{Visible: true}, adminHeader)
	w = httptest.NewRecorder()
	adminHandler.SetResultsVisible(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 7 - Publish failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 8: Published results carry the counts
	req = testutil.MakeRequest("GET", "/results", nil, nil)
	w = httptest.NewRecorder()
	resultsHandler.GetResults(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 8 - Results failed: %d - %s", w.Code, w.Body.String())
	}

	var results models.ResultsResponse
	json.NewDecoder(w.Body).Decode(&results)
	treasurer := results.Results["Treasurer"]
	if treasurer.TotalVotes != 3 {
		t.Errorf("Step 8 - Expected 3 votes for Treasurer, got %d", treasurer.TotalVotes)
	}
	if len(treasurer.Candidates) != 1 || treasurer.Candidates[0].Percentage != 100 {
		t.Errorf("Step 8 - Expected sole candidate at 100%%, got %+v", treasurer.Candidates)
	}
	t.Log("Step 8 - Full workflow completed")
}
