// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/electchain/server/cliparse"
	"github.com/electchain/server/election"
	"github.com/electchain/server/handlers"
	"github.com/electchain/server/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	core := election.NewCore(db)

	// Initialize handlers
	registrationHandler := handlers.NewRegistrationHandler(core, cfg)
	authHandler := handlers.NewAuthHandler(core, cfg)
	adminHandler := handlers.NewAdminHandler(core, cfg)
	votingHandler := handlers.NewVotingHandler(core, cfg)
	resultsHandler := handlers.NewResultsHandler(core, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Registration and login (public)
	mux.HandleFunc("POST /voters", middleware.WithLogging(registrationHandler.RegisterVoter))
	mux.HandleFunc("POST /candidates", middleware.WithLogging(registrationHandler.RegisterCandidate))
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))

	// Admin operations
	mux.HandleFunc("GET /admin/candidates", middleware.WithLogging(adminHandler.ListCandidates))
	mux.HandleFunc("POST /admin/candidates/{id}/decision", middleware.WithLogging(adminHandler.ModerateCandidate))
	mux.HandleFunc("POST /admin/election/toggle", middleware.WithLogging(adminHandler.ToggleElection))
	mux.HandleFunc("PUT /admin/election/window", middleware.WithLogging(adminHandler.SetWindow))
	mux.HandleFunc("PUT /admin/election/results-visible", middleware.WithLogging(adminHandler.SetResultsVisible))
	mux.HandleFunc("GET /admin/stats", middleware.WithLogging(adminHandler.Stats))
	mux.HandleFunc("GET /admin/results", middleware.WithLogging(adminHandler.PreviewResults))

	// Voting operations (voter token)
	mux.HandleFunc("GET /election/ballot", middleware.WithLogging(votingHandler.GetBallot))
	mux.HandleFunc("POST /votes", middleware.WithLogging(votingHandler.CastVote))
	mux.HandleFunc("GET /votes/status", middleware.WithLogging(votingHandler.HasVoted))

	// Election state and results (public, gated)
	mux.HandleFunc("GET /election", middleware.WithLogging(resultsHandler.GetElection))
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))

	// Prometheus metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("electchain API v1"))
	})

	return mux
}
