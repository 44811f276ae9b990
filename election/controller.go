// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/electchain/server/models"
)

// GetElection returns the singleton election record.
func (c *Core) GetElection() (models.Election, error) {
	var e models.Election
	var start, end sql.NullString
	err := c.db.QueryRow(`
		SELECT status, window_start, window_end, results_visible
		FROM election
		WHERE id = 1
	`).Scan(&e.Status, &start, &end, &e.ResultsVisible)
	if err != nil {
		return models.Election{}, fmt.Errorf("failed to query election: %w", err)
	}

	if e.VotingWindow.Start, err = parseWindowBound(start); err != nil {
		return models.Election{}, err
	}
	if e.VotingWindow.End, err = parseWindowBound(end); err != nil {
		return models.Election{}, err
	}

	return e, nil
}

// ToggleStatus flips the election between inactive and active and
// returns the new status. The flip is unconditional; there is no guard
// against toggling mid-vote.
func (c *Core) ToggleStatus() (string, error) {
	tx, err := c.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var status string
	if err := tx.QueryRow(`SELECT status FROM election WHERE id = 1`).Scan(&status); err != nil {
		return "", fmt.Errorf("failed to query election status: %w", err)
	}

	newStatus := models.ElectionActive
	if status == models.ElectionActive {
		newStatus = models.ElectionInactive
	}

	if _, err := tx.Exec(`UPDATE election SET status = $1 WHERE id = 1`, newStatus); err != nil {
		return "", fmt.Errorf("failed to update election status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit status toggle: %w", err)
	}

	return newStatus, nil
}

// SetVotingWindow sets the voting window. The reference system accepted
// any pair of bounds; requiring end after start is a deliberate
// hardening here.
func (c *Core) SetVotingWindow(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidRange
	}

	_, err := c.db.Exec(`
		UPDATE election SET window_start = $1, window_end = $2 WHERE id = 1
	`, start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to update voting window: %w", err)
	}
	return nil
}

// SetResultsVisible sets the admin-controlled results visibility flag.
func (c *Core) SetResultsVisible(visible bool) error {
	if _, err := c.db.Exec(`UPDATE election SET results_visible = $1 WHERE id = 1`, visible); err != nil {
		return fmt.Errorf("failed to update results visibility: %w", err)
	}
	return nil
}

// EvalWindow evaluates the voting window at the given moment. Pure: no
// storage access, no background timers; callers evaluate on demand. An
// unset or half-set window has never started.
func EvalWindow(w models.VotingWindow, now time.Time) WindowState {
	if w.Start == nil || w.End == nil {
		return WindowNotStarted
	}
	if now.Before(*w.Start) {
		return WindowNotStarted
	}
	if now.Before(*w.End) {
		return WindowOpen
	}
	return WindowClosed
}

func parseWindowBound(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v.String)
	if err != nil {
		return nil, fmt.Errorf("failed to parse window bound %q: %w", v.String, err)
	}
	return &t, nil
}
