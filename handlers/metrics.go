// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	votesCastTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "electchain_votes_cast_total",
		Help: "Ballots accepted and committed.",
	})
	votesRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "electchain_votes_rejected_total",
		Help: "Vote attempts refused, by reason code.",
	}, []string{"reason"})
	registrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "electchain_registrations_total",
		Help: "Successful registrations, by role.",
	}, []string{"role"})
	loginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "electchain_logins_total",
		Help: "Login attempts, by role and outcome.",
	}, []string{"role", "outcome"})
)
