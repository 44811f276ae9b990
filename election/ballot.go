// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/electchain/server/models"
)

// CastVote records one vote by voterID for candidateID.
//
// Preconditions, first failure wins:
//  1. the voter exists
//  2. the voter has not voted before (one vote for the whole election,
//     not one per position)
//  3. the candidate exists and is approved
//  4. the election is active and the voting window is open
//
// On success the ballot marker and the tally increment commit in one
// transaction; on any failure neither is applied. The marker's primary
// key makes the marker insert lose cleanly when two requests for the
// same voter race past the precondition checks.
func (c *Core) CastVote(voterID, candidateID string, meta VoteMeta) error {
	var exists bool
	err := c.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM voter WHERE id = $1)`, voterID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check voter: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	err = c.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM ballot WHERE voter_id = $1)`, voterID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check ballot marker: %w", err)
	}
	if exists {
		return ErrAlreadyVoted
	}

	var name, position, status string
	err = c.db.QueryRow(`SELECT name, position, status FROM candidate WHERE id = $1`, candidateID).
		Scan(&name, &position, &status)
	if err == sql.ErrNoRows {
		return ErrCandidateNotEligible
	}
	if err != nil {
		return fmt.Errorf("failed to query candidate: %w", err)
	}
	if status != models.CandidacyApproved {
		return ErrCandidateNotEligible
	}

	e, err := c.GetElection()
	if err != nil {
		return err
	}
	now := c.now()
	if e.Status != models.ElectionActive || EvalWindow(e.VotingWindow, now) != WindowOpen {
		return ErrVotingClosed
	}

	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO ballot (voter_id, cast_at, ip_hash, user_agent)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (voter_id) DO NOTHING
	`, voterID, now.UTC().Format(time.RFC3339), nullable(meta.IPHash), nullable(meta.UserAgent))
	if err != nil {
		return fmt.Errorf("failed to insert ballot marker: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		// Lost the race to a concurrent request for the same voter
		return ErrAlreadyVoted
	}

	_, err = tx.Exec(`
		INSERT INTO tally (position, candidate_name, votes)
		VALUES ($1, $2, 1)
		ON CONFLICT (position, candidate_name) DO UPDATE SET votes = tally.votes + 1
	`, position, name)
	if err != nil {
		return fmt.Errorf("failed to increment tally: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit vote: %w", err)
	}

	return nil
}

// Ballot returns the approved candidates grouped by position, in the
// canonical position order. Positions with no approved candidate are
// omitted.
func (c *Core) Ballot() (models.BallotResponse, error) {
	approved, err := c.ListCandidates(models.CandidacyApproved)
	if err != nil {
		return models.BallotResponse{}, err
	}

	byPosition := make(map[string][]models.Candidate)
	for _, cand := range approved {
		byPosition[cand.Position] = append(byPosition[cand.Position], cand)
	}

	resp := models.BallotResponse{Positions: []models.BallotPosition{}}
	for _, pos := range models.Positions {
		cands, ok := byPosition[pos]
		if !ok {
			continue
		}
		resp.Positions = append(resp.Positions, models.BallotPosition{
			Position:   pos,
			Candidates: cands,
		})
	}
	return resp, nil
}

// HasVoted reports whether the ballot marker for voterID is present.
func (c *Core) HasVoted(voterID string) (bool, error) {
	var exists bool
	err := c.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM ballot WHERE voter_id = $1)`, voterID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check ballot marker: %w", err)
	}
	return exists, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
