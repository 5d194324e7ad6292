package scores_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourlab/tourlab/scores"
	"github.com/tourlab/tourlab/solve"
)

// memStore opens a fresh in-memory database per test.
func memStore(t *testing.T) *scores.Store {
	t.Helper()

	store, err := scores.Open(":memory:")
	require.NoError(t, err)

	return store
}

// okResult fabricates a successful solver result for persistence tests.
func okResult(a solve.Algorithm, length float64, elapsed time.Duration) solve.Result {
	return solve.Result{
		Algorithm: a,
		Tour:      []int{0, 1, 2, 3},
		Length:    length,
		Elapsed:   elapsed,
	}
}

// TestStore_SaveAndTopScores verifies the arcade ordering: shortest route
// first, faster run breaking ties.
func TestStore_SaveAndTopScores(t *testing.T) {
	store := memStore(t)

	require.NoError(t, store.Save("ada", 0, okResult(solve.HeldKarp, 40, 2*time.Millisecond)))
	require.NoError(t, store.Save("bob", 0, okResult(solve.NearestNeighbor, 48, time.Millisecond)))
	require.NoError(t, store.Save("cyd", 0, okResult(solve.BruteForce, 40, time.Millisecond)))

	rows, err := store.TopScores(10)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "cyd", rows[0].PlayerName, "equal length, faster run wins")
	assert.Equal(t, "ada", rows[1].PlayerName)
	assert.Equal(t, "bob", rows[2].PlayerName)
	assert.JSONEq(t, "[0,1,2,3]", rows[0].Route)
	assert.Equal(t, 4, rows[0].CitiesVisited)
}

// TestStore_TopScoresLimit verifies the limit is honored.
func TestStore_TopScoresLimit(t *testing.T) {
	store := memStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Save("ada", 0,
			okResult(solve.HeldKarp, float64(40+i), time.Millisecond)))
	}

	rows, err := store.TopScores(2)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, 40.0, rows[0].RouteLength)
}

// TestStore_PlayerHistory verifies per-player retrieval, most recent first.
func TestStore_PlayerHistory(t *testing.T) {
	store := memStore(t)

	require.NoError(t, store.Save("ada", 0, okResult(solve.HeldKarp, 40, time.Millisecond)))
	require.NoError(t, store.Save("bob", 1, okResult(solve.HeldKarp, 41, time.Millisecond)))
	require.NoError(t, store.Save("ada", 2, okResult(solve.BruteForce, 42, time.Millisecond)))

	rows, err := store.PlayerHistory("ada")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "ada", row.PlayerName)
	}

	rows, err = store.PlayerHistory("nobody")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

// TestStore_AlgorithmStats verifies the per-algorithm aggregates.
func TestStore_AlgorithmStats(t *testing.T) {
	store := memStore(t)

	require.NoError(t, store.Save("ada", 0, okResult(solve.HeldKarp, 40, time.Millisecond)))
	require.NoError(t, store.Save("ada", 0, okResult(solve.HeldKarp, 44, time.Millisecond)))
	require.NoError(t, store.Save("ada", 0, okResult(solve.NearestNeighbor, 50, time.Millisecond)))

	stats, err := store.AlgorithmStats()
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Ordered by tag: held-karp before nearest-neighbor.
	assert.Equal(t, "held-karp", stats[0].Algorithm)
	assert.EqualValues(t, 2, stats[0].Runs)
	assert.InDelta(t, 42.0, stats[0].AvgLength, 1e-9)
	assert.InDelta(t, 40.0, stats[0].BestLength, 1e-9)

	assert.Equal(t, "nearest-neighbor", stats[1].Algorithm)
	assert.EqualValues(t, 1, stats[1].Runs)
}

// TestStore_RejectsFailedResult verifies only successful tours are scored.
func TestStore_RejectsFailedResult(t *testing.T) {
	store := memStore(t)

	err := store.Save("ada", 0, solve.Result{
		Algorithm: solve.BruteForce,
		Err:       solve.ErrProblemTooLarge,
	})
	assert.ErrorIs(t, err, scores.ErrFailedResult)

	rows, err := store.TopScores(10)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
