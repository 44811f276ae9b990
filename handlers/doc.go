// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ElectChain API.

# Handler Types

Each handler is a struct holding the election core and config:

  - RegistrationHandler: Voter and candidate registration
  - AuthHandler: Login for voters, candidates, and the admin
  - AdminHandler: Candidacy moderation and election controls
  - VotingHandler: Ballot retrieval and vote casting
  - ResultsHandler: Election state and published results

Handlers are created via constructor functions that accept
*election.Core and Config:

	votingHandler := handlers.NewVotingHandler(core, cfg)

# Registration and Login

	POST /voters     → RegisterVoter (returns voterId)
	POST /candidates → RegisterCandidate (candidacy starts pending)
	POST /login      → Login (role: voter, candidate, or admin)

A voter or candidate login returns a session token; an admin login
returns the admin key. Admin operations require the X-Admin-Key
header, voter operations the X-Voter-Token header.

# Moderation and Election Controls

	GET /admin/candidates?status=pending      → ListCandidates
	POST /admin/candidates/{id}/decision      → ModerateCandidate
	POST /admin/election/toggle               → ToggleElection
	PUT /admin/election/window                → SetWindow
	PUT /admin/election/results-visible       → SetResultsVisible
	GET /admin/stats                          → Stats
	GET /admin/results                        → PreviewResults

# Voting Flow

	GET /election/ballot → GetBallot (approved candidates by position)
	POST /votes          → CastVote (one per voter, whole election)
	GET /votes/status    → HasVoted

# Results

	GET /election → GetElection (status, window, visibility)
	GET /results  → GetResults (403 until the admin publishes)

Domain failures are reported with stable machine-readable codes, for
example ALREADY_VOTED or RESULTS_HIDDEN; see errors.go for the mapping.
*/
package handlers
