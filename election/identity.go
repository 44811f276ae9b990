// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/electchain/server/auth"
	"github.com/electchain/server/models"
)

// RegisterVoter validates and persists a new voter, returning its ID.
// The email must not be registered to another voter.
func (c *Core) RegisterVoter(req models.RegisterVoterRequest) (string, error) {
	required := []struct{ name, value string }{
		{"fullName", req.FullName},
		{"studentId", req.StudentID},
		{"email", req.Email},
		{"college", req.College},
		{"department", req.Department},
		{"year", req.Year},
		{"phone", req.Phone},
		{"password", req.Password},
	}
	for _, f := range required {
		if f.value == "" {
			return "", fmt.Errorf("%w: %s is required", ErrValidation, f.name)
		}
	}

	hash, err := auth.HashCredential(req.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash credential: %w", err)
	}

	voterID := uuid.NewString()
	_, err = c.db.Exec(`
		INSERT INTO voter (id, full_name, student_id, email, college, department, year, phone, credential_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, voterID, req.FullName, req.StudentID, req.Email, req.College, req.Department,
		req.Year, req.Phone, hash, c.now().UTC().Format(time.RFC3339))

	if err != nil {
		// The UNIQUE constraint on email is the authority; both drivers
		// only tell us through the error text
		if isUniqueViolation(err) {
			return "", ErrDuplicateEmail
		}
		return "", fmt.Errorf("failed to insert voter: %w", err)
	}

	return voterID, nil
}

// RegisterCandidate validates and persists a new candidacy in pending
// status. Candidate emails are deliberately not deduplicated (reference
// behavior; possibly a gap, preserved rather than silently fixed).
func (c *Core) RegisterCandidate(req models.RegisterCandidateRequest) (string, error) {
	required := []struct{ name, value string }{
		{"fullName", req.FullName},
		{"studentId", req.StudentID},
		{"email", req.Email},
		{"department", req.Department},
		{"phone", req.Phone},
		{"position", req.Position},
		{"manifesto", req.Manifesto},
		{"password", req.Password},
	}
	for _, f := range required {
		if f.value == "" {
			return "", fmt.Errorf("%w: %s is required", ErrValidation, f.name)
		}
	}
	if !models.ValidPosition(req.Position) {
		return "", fmt.Errorf("%w: unknown position %q", ErrValidation, req.Position)
	}

	hash, err := auth.HashCredential(req.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash credential: %w", err)
	}

	candidateID := uuid.NewString()
	_, err = c.db.Exec(`
		INSERT INTO candidate (id, name, position, manifesto, email, credential_hash, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, candidateID, req.FullName, req.Position, req.Manifesto, req.Email, hash,
		models.CandidacyPending, c.now().UTC().Format(time.RFC3339))

	if err != nil {
		return "", fmt.Errorf("failed to insert candidate: %w", err)
	}

	return candidateID, nil
}

// Authenticate verifies email+credential for the given role and returns
// the matching entity ID. Missing records and credential mismatches are
// indistinguishable to the caller.
func (c *Core) Authenticate(email, credential, role string) (string, error) {
	var query string
	switch role {
	case models.RoleVoter:
		query = `SELECT id, credential_hash FROM voter WHERE email = $1`
	case models.RoleCandidate:
		// Candidates can share an email; the first registration wins
		query = `SELECT id, credential_hash FROM candidate WHERE email = $1 ORDER BY created_at, id LIMIT 1`
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	var id, hash string
	err := c.db.QueryRow(query, email).Scan(&id, &hash)
	if err == sql.ErrNoRows {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to query %s by email: %w", role, err)
	}

	if !auth.VerifyCredential(hash, credential) {
		return "", ErrInvalidCredentials
	}

	return id, nil
}

// GetVoter returns the voter record for id.
func (c *Core) GetVoter(id string) (models.Voter, error) {
	var v models.Voter
	err := c.db.QueryRow(`
		SELECT id, full_name, student_id, email, college, department, year, phone, credential_hash
		FROM voter
		WHERE id = $1
	`, id).Scan(&v.ID, &v.FullName, &v.StudentID, &v.Email, &v.College,
		&v.Department, &v.Year, &v.Phone, &v.CredentialHash)

	if err == sql.ErrNoRows {
		return models.Voter{}, ErrNotFound
	}
	if err != nil {
		return models.Voter{}, fmt.Errorf("failed to query voter: %w", err)
	}
	return v, nil
}

// GetCandidate returns the candidate record for id.
func (c *Core) GetCandidate(id string) (models.Candidate, error) {
	var cand models.Candidate
	err := c.db.QueryRow(`
		SELECT id, name, position, manifesto, email, credential_hash, status
		FROM candidate
		WHERE id = $1
	`, id).Scan(&cand.ID, &cand.Name, &cand.Position, &cand.Manifesto,
		&cand.Email, &cand.CredentialHash, &cand.Status)

	if err == sql.ErrNoRows {
		return models.Candidate{}, ErrNotFound
	}
	if err != nil {
		return models.Candidate{}, fmt.Errorf("failed to query candidate: %w", err)
	}
	return cand, nil
}

// isUniqueViolation matches the constraint-violation error text of both
// supported drivers (lib/pq and modernc sqlite).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
