// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"math"
	"sort"

	"github.com/electchain/server/models"
)

// Tally returns the vote counts for a single position, with each row's
// percentage of the position total rounded to the nearest integer. Rows
// sort by percentage descending, ties broken by candidate name.
func (c *Core) Tally(position string) ([]models.TallyRow, error) {
	rows, err := c.db.Query(`
		SELECT candidate_name, votes
		FROM tally
		WHERE position = $1
	`, position)
	if err != nil {
		return nil, fmt.Errorf("failed to query tally: %w", err)
	}
	defer rows.Close()

	var out []models.TallyRow
	var total int
	for rows.Next() {
		var r models.TallyRow
		if err := rows.Scan(&r.CandidateName, &r.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan tally row: %w", err)
		}
		total += r.Votes
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tally rows: %w", err)
	}

	for i := range out {
		if total > 0 {
			out[i].Percentage = int(math.Round(float64(out[i].Votes) / float64(total) * 100))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Percentage != out[j].Percentage {
			return out[i].Percentage > out[j].Percentage
		}
		return out[i].CandidateName < out[j].CandidateName
	})

	return out, nil
}

// Stats returns the headline counts for the admin dashboard.
func (c *Core) Stats() (models.StatsResponse, error) {
	var s models.StatsResponse

	if err := c.db.QueryRow(`SELECT COUNT(*) FROM voter`).Scan(&s.TotalVoters); err != nil {
		return s, fmt.Errorf("failed to count voters: %w", err)
	}
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM candidate`).Scan(&s.TotalCandidates); err != nil {
		return s, fmt.Errorf("failed to count candidates: %w", err)
	}
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM ballot`).Scan(&s.TotalVotesCast); err != nil {
		return s, fmt.Errorf("failed to count ballots: %w", err)
	}

	e, err := c.GetElection()
	if err != nil {
		return s, err
	}
	s.ElectionStatus = e.Status

	return s, nil
}
