// Package solve_test - shared fixtures for the solver tests.
//
// Fixtures are built from concrete coordinate sets so expected lengths are
// exact by construction (unit square scaled by 10, the 3-4-5 right
// triangle pair, seeded random maps).
package solve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tourlab/tourlab/cities"
	"github.com/tourlab/tourlab/solve"
)

const (
	// lenEps absorbs the 1e-9 cost stabilization applied by every solver.
	lenEps = 1e-9

	// squarePerimeter is the optimal tour length of the 10×10 square fixture.
	squarePerimeter = 40.0

	// pairRoundTrip is the optimal length of the two-city 3-4-5 fixture
	// (2 × 5, out and back along the same edge).
	pairRoundTrip = 10.0
)

// squareMatrix returns the canonical 4-city fixture: the corners of a
// 10×10 square in clockwise identifier order.
func squareMatrix(t *testing.T) *cities.DistanceMatrix {
	t.Helper()

	set, err := cities.FromCoordinates([][2]float64{
		{0, 0}, {0, 10}, {10, 10}, {10, 0},
	})
	require.NoError(t, err)

	dist, err := cities.NewDistanceMatrix(set)
	require.NoError(t, err)

	return dist
}

// pairMatrix returns the two-city 3-4-5 fixture: (0,0) and (3,4).
func pairMatrix(t *testing.T) *cities.DistanceMatrix {
	t.Helper()

	set, err := cities.FromCoordinates([][2]float64{{0, 0}, {3, 4}})
	require.NoError(t, err)

	dist, err := cities.NewDistanceMatrix(set)
	require.NoError(t, err)

	return dist
}

// randomMatrix returns a seeded n-city instance on the default field.
func randomMatrix(t *testing.T, n int, seed int64) *cities.DistanceMatrix {
	t.Helper()

	set, err := cities.Random(n, seed, cities.DefaultWidth, cities.DefaultHeight)
	require.NoError(t, err)

	dist, err := cities.NewDistanceMatrix(set)
	require.NoError(t, err)

	return dist
}

// mustSolver resolves the solver for a variant or fails the test.
func mustSolver(t *testing.T, a solve.Algorithm) solve.Solver {
	t.Helper()

	s, err := solve.New(a)
	require.NoError(t, err)

	return s
}

// requireValidTour asserts that tour is a permutation of 0..n-1 starting
// at start.
func requireValidTour(t *testing.T, tour []int, n, start int) {
	t.Helper()

	require.Len(t, tour, n)
	if n > 0 {
		require.Equal(t, start, tour[0], "tour must begin at the start city")
	}

	seen := make(map[int]bool, n)
	for _, v := range tour {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, n)
		require.False(t, seen[v], "city %d repeated in tour", v)
		seen[v] = true
	}
}
