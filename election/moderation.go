// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"

	"github.com/electchain/server/models"
)

// SetCandidacyStatus applies a moderation decision to a candidacy.
// Re-applying the same decision is a no-op. Approval status is only
// consulted at vote time, so a late approval never validates votes that
// slipped through earlier.
func (c *Core) SetCandidacyStatus(candidateID, decision string) error {
	var status string
	switch decision {
	case models.DecisionApprove:
		status = models.CandidacyApproved
	case models.DecisionReject:
		status = models.CandidacyRejected
	default:
		return fmt.Errorf("%w: decision must be approve or reject", ErrValidation)
	}

	res, err := c.db.Exec(`UPDATE candidate SET status = $1 WHERE id = $2`, status, candidateID)
	if err != nil {
		return fmt.Errorf("failed to update candidacy status: %w", err)
	}

	// RowsAffected is 1 on idempotent re-application too (the UPDATE
	// still matches the row); 0 means the candidate does not exist
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// ListCandidates returns candidates, optionally filtered by status.
// Ordered by registration time for a stable moderation queue.
func (c *Core) ListCandidates(statusFilter string) ([]models.Candidate, error) {
	query := `
		SELECT id, name, position, manifesto, email, credential_hash, status
		FROM candidate
		ORDER BY created_at, id
	`
	args := []interface{}{}
	if statusFilter != "" {
		query = `
			SELECT id, name, position, manifesto, email, credential_hash, status
			FROM candidate
			WHERE status = $1
			ORDER BY created_at, id
		`
		args = append(args, statusFilter)
	}

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var cand models.Candidate
		if err := rows.Scan(&cand.ID, &cand.Name, &cand.Position, &cand.Manifesto,
			&cand.Email, &cand.CredentialHash, &cand.Status); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, cand)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}

	return candidates, nil
}
