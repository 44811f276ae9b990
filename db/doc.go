// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables and seeds the singleton
election row:

	if err := db.CreateSchema(conn); err != nil {
		// handle error
	}

Safe to call on every startup; creation is idempotent.

# Tables

  - voter: registered voters (email unique)
  - candidate: candidacies with moderation status
  - election: the singleton election record (id = 1)
  - ballot: per-voter markers enforcing one vote per voter
  - tally: vote counts per (position, candidate name)

All timestamps are stored as RFC3339 TEXT so the schema behaves the
same on PostgreSQL and SQLite.
*/
package db
