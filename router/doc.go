// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ElectChain API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Registration and login (public):

	POST /voters     - Register voter
	POST /candidates - Submit candidacy (starts pending)
	POST /login      - Log in as voter, candidate, or admin

Administration (requires X-Admin-Key):

	GET  /admin/candidates                  - List candidacies, optional ?status=
	POST /admin/candidates/{id}/decision    - Approve or reject a candidacy
	POST /admin/election/toggle             - Flip election active/inactive
	PUT  /admin/election/window             - Set the voting window
	PUT  /admin/election/results-visible    - Publish or hide results
	GET  /admin/stats                       - Headline counts
	GET  /admin/results                     - Results preview, ungated

Voting (requires X-Voter-Token for writes):

	GET  /election/ballot - Approved candidates by position
	POST /votes           - Cast the voter's single ballot
	GET  /votes/status    - Whether the voter has voted

Election state and results (public):

	GET /election - Status, voting window, results visibility
	GET /results  - Published results (403 until visible)

Operations:

	GET /metrics - Prometheus metrics

# Handler Initialization

The router builds one election.Core over the database and hands it to
each handler:

	core := election.NewCore(db)
	votingHandler := handlers.NewVotingHandler(core, cfg)

All handlers receive the core and configuration.
*/
package router
