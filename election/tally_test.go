// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electchain/server/models"
	"github.com/electchain/server/testutil"
)

func seedTally(t *testing.T, core *Core, position string, votes map[string]int) {
	t.Helper()
	for name, n := range votes {
		for i := 0; i < n; i++ {
			_, err := core.db.Exec(`
				INSERT INTO tally (position, candidate_name, votes)
				VALUES ($1, $2, 1)
				ON CONFLICT (position, candidate_name) DO UPDATE SET votes = tally.votes + 1
			`, position, name)
			require.NoError(t, err)
		}
	}
}

func TestTally_PercentagesAndOrder(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	core := NewCore(conn)

	seedTally(t, core, "Treasurer", map[string]int{
		"Grace Hopper": 3,
		"Alan Turing":  1,
	})

	rows, err := core.Tally("Treasurer")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Grace Hopper", rows[0].CandidateName)
	assert.Equal(t, 3, rows[0].Votes)
	assert.Equal(t, 75, rows[0].Percentage)

	assert.Equal(t, "Alan Turing", rows[1].CandidateName)
	assert.Equal(t, 1, rows[1].Votes)
	assert.Equal(t, 25, rows[1].Percentage)
}

func TestTally_TieBreaksByName(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	core := NewCore(conn)

	seedTally(t, core, "Secretary", map[string]int{
		"Zoe":  2,
		"Abel": 2,
	})

	rows, err := core.Tally("Secretary")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Abel", rows[0].CandidateName)
	assert.Equal(t, "Zoe", rows[1].CandidateName)
}

func TestTally_EmptyPosition(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	core := NewCore(conn)

	rows, err := core.Tally("Treasurer")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestResults_Gate(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	core := NewCore(conn)

	seedTally(t, core, "Treasurer", map[string]int{"Grace Hopper": 2})

	_, err := core.Results()
	assert.ErrorIs(t, err, ErrResultsHidden)

	testutil.SetResultsVisible(t, conn, true)
	resp, err := core.Results()
	require.NoError(t, err)

	// Every known position appears, even without votes
	require.Len(t, resp.Results, len(models.Positions))
	treasurer := resp.Results["Treasurer"]
	assert.Equal(t, 2, treasurer.TotalVotes)
	require.Len(t, treasurer.Candidates, 1)
	assert.Equal(t, 100, treasurer.Candidates[0].Percentage)

	secretary := resp.Results["Secretary"]
	assert.Equal(t, 0, secretary.TotalVotes)
	assert.Empty(t, secretary.Candidates)
}

func TestResults_GateIgnoresWindow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	core := NewCore(conn)

	// Voting still open; visibility alone decides
	testutil.OpenElection(t, conn)
	testutil.SetResultsVisible(t, conn, true)

	_, err := core.Results()
	assert.NoError(t, err)
}

func TestPreview_BypassesGate(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	core := NewCore(conn)

	seedTally(t, core, "Treasurer", map[string]int{"Grace Hopper": 1})

	resp, err := core.Preview()
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Results["Treasurer"].TotalVotes)
}

func TestStats(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	core := NewCore(conn)

	testutil.OpenElection(t, conn)
	v1 := testutil.CreateTestVoter(t, conn, "a@test.edu", "pw")
	testutil.CreateTestVoter(t, conn, "b@test.edu", "pw")
	cand := testutil.CreateTestCandidate(t, conn, "Grace Hopper", "Treasurer", models.CandidacyApproved)
	require.NoError(t, core.CastVote(v1, cand, VoteMeta{}))

	s, err := core.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, s.TotalVoters)
	assert.Equal(t, 1, s.TotalCandidates)
	assert.Equal(t, 1, s.TotalVotesCast)
	assert.Equal(t, models.ElectionActive, s.ElectionStatus)
}
