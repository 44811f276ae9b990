// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"database/sql"
	"errors"
	"time"
)

// Error kinds reported to callers. All are local, recoverable
// conditions; the HTTP layer maps them to status codes.
var (
	ErrValidation           = errors.New("validation failed")
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrNotFound             = errors.New("not found")
	ErrAlreadyVoted         = errors.New("voter has already cast a ballot")
	ErrCandidateNotEligible = errors.New("candidate is not eligible")
	ErrVotingClosed         = errors.New("voting is closed")
	ErrResultsHidden        = errors.New("results are hidden")
	ErrInvalidRange         = errors.New("window end must be after start")
)

// WindowState is the position of a moment relative to the voting window.
type WindowState string

const (
	WindowNotStarted WindowState = "notStarted"
	WindowOpen       WindowState = "open"
	WindowClosed     WindowState = "closed"
)

// Core implements the election workflow over a *sql.DB: registration,
// authentication, candidacy moderation, election controls, vote
// casting, tallying, and the results gate.
type Core struct {
	db  *sql.DB
	now func() time.Time
}

func NewCore(db *sql.DB) *Core {
	return &Core{db: db, now: time.Now}
}

// VoteMeta carries request-level context recorded with a ballot marker.
type VoteMeta struct {
	IPHash    string
	UserAgent string
}
