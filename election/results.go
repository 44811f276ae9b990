// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"github.com/electchain/server/models"
)

// Results returns the per-position tallies, gated on the election's
// results_visible flag. The voting window plays no part here: an admin
// can publish results mid-vote or keep them hidden after close.
func (c *Core) Results() (models.ResultsResponse, error) {
	e, err := c.GetElection()
	if err != nil {
		return models.ResultsResponse{}, err
	}
	if !e.ResultsVisible {
		return models.ResultsResponse{}, ErrResultsHidden
	}
	return c.collectResults()
}

// Preview returns the same payload as Results without the visibility
// gate. Admin only.
func (c *Core) Preview() (models.ResultsResponse, error) {
	return c.collectResults()
}

func (c *Core) collectResults() (models.ResultsResponse, error) {
	resp := models.ResultsResponse{
		Results: make(map[string]models.PositionResult, len(models.Positions)),
	}
	for _, pos := range models.Positions {
		rows, err := c.Tally(pos)
		if err != nil {
			return models.ResultsResponse{}, err
		}
		var total int
		for _, r := range rows {
			total += r.Votes
		}
		if rows == nil {
			rows = []models.TallyRow{}
		}
		resp.Results[pos] = models.PositionResult{
			Candidates: rows,
			TotalVotes: total,
		}
	}
	return resp, nil
}
