package cities_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourlab/tourlab/cities"
)

// TestRandom_Deterministic verifies the seeding policy: equal seeds give
// identical maps, different seeds differ, and seed 0 is the stable default.
func TestRandom_Deterministic(t *testing.T) {
	a, err := cities.Random(10, 7, cities.DefaultWidth, cities.DefaultHeight)
	require.NoError(t, err)
	b, err := cities.Random(10, 7, cities.DefaultWidth, cities.DefaultHeight)
	require.NoError(t, err)
	assert.Equal(t, a.Cities(), b.Cities(), "same seed must reproduce the map")

	c, err := cities.Random(10, 8, cities.DefaultWidth, cities.DefaultHeight)
	require.NoError(t, err)
	assert.NotEqual(t, a.Cities(), c.Cities(), "different seeds should differ")

	zero, err := cities.Random(10, 0, cities.DefaultWidth, cities.DefaultHeight)
	require.NoError(t, err)
	one, err := cities.Random(10, 1, cities.DefaultWidth, cities.DefaultHeight)
	require.NoError(t, err)
	assert.Equal(t, one.Cities(), zero.Cities(), "seed 0 selects the default stream")
}

// TestRandom_Bounds verifies placement inside the requested field and the
// 0..N-1 identifier sequence.
func TestRandom_Bounds(t *testing.T) {
	set, err := cities.Random(50, 3, 20, 40)
	require.NoError(t, err)
	require.Equal(t, 50, set.Len())

	for i, c := range set.Cities() {
		assert.Equal(t, i, c.ID)
		assert.GreaterOrEqual(t, c.X, 0.0)
		assert.Less(t, c.X, 20.0)
		assert.GreaterOrEqual(t, c.Y, 0.0)
		assert.Less(t, c.Y, 40.0)
	}
}

// TestRandom_BadInputs covers the negative count and non-finite extents.
func TestRandom_BadInputs(t *testing.T) {
	_, err := cities.Random(-1, 1, cities.DefaultWidth, cities.DefaultHeight)
	assert.ErrorIs(t, err, cities.ErrNegativeCount)

	_, err = cities.Random(3, 1, math.NaN(), cities.DefaultHeight)
	assert.ErrorIs(t, err, cities.ErrNonFiniteCoordinate)
}

// TestRandom_Empty verifies n==0 yields a valid empty set.
func TestRandom_Empty(t *testing.T) {
	set, err := cities.Random(0, 1, cities.DefaultWidth, cities.DefaultHeight)
	require.NoError(t, err)
	assert.Zero(t, set.Len())
}
