// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/electchain/server/models"
)

// CreateSchema creates all tables needed for the application and seeds
// the singleton election row. Safe to call multiple times - uses IF NOT
// EXISTS and ON CONFLICT DO NOTHING.
//
// The SQL is kept to the dialect both drivers share (TEXT timestamps in
// RFC3339, $n placeholders in ascending order) so the same statements
// run on PostgreSQL and SQLite.
func CreateSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// The election record always exists: default inactive, no window,
	// results hidden.
	_, err := db.Exec(`
		INSERT INTO election (id, status, window_start, window_end, results_visible)
		VALUES (1, $1, NULL, NULL, FALSE)
		ON CONFLICT (id) DO NOTHING
	`, models.ElectionInactive)
	if err != nil {
		return fmt.Errorf("failed to seed election record: %w", err)
	}

	return nil
}

const schema = `
-- Voters
CREATE TABLE IF NOT EXISTS voter (
    id TEXT PRIMARY KEY,
    full_name TEXT NOT NULL,
    student_id TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    college TEXT NOT NULL,
    department TEXT NOT NULL,
    year TEXT NOT NULL,
    phone TEXT NOT NULL,
    credential_hash TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_voter_email ON voter(email);

-- Candidates (no email uniqueness: reference behavior)
CREATE TABLE IF NOT EXISTS candidate (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    position TEXT NOT NULL,
    manifesto TEXT NOT NULL,
    email TEXT NOT NULL,
    credential_hash TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected')),
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_candidate_status ON candidate(status);
CREATE INDEX IF NOT EXISTS idx_candidate_position ON candidate(position);

-- The election singleton
CREATE TABLE IF NOT EXISTS election (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    status TEXT NOT NULL DEFAULT 'inactive' CHECK (status IN ('inactive', 'active')),
    window_start TEXT,
    window_end TEXT,
    results_visible BOOLEAN NOT NULL DEFAULT FALSE
);

-- Ballot markers: presence means the voter has voted
CREATE TABLE IF NOT EXISTS ballot (
    voter_id TEXT PRIMARY KEY REFERENCES voter(id),
    cast_at TEXT NOT NULL,
    ip_hash TEXT,
    user_agent TEXT
);

-- Tally: one row per (position, candidate name) that received votes
CREATE TABLE IF NOT EXISTS tally (
    position TEXT NOT NULL,
    candidate_name TEXT NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (position, candidate_name)
);

CREATE INDEX IF NOT EXISTS idx_tally_position ON tally(position);
`
