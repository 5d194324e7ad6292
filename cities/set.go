// Package cities - Set construction and read accessors.
//
// Design principles (shared across the module):
//   - Deterministic, side-effect free constructors.
//   - Strict sentinels from types.go; no fmt.Errorf where a sentinel suffices.
//   - Defensive copies at the boundary so a Set can never alias caller memory.
package cities

import "math"

// NewSet validates and copies the given cities into an immutable Set.
//
// Contract:
//   - list may be empty (N == 0 is a valid, trivial instance).
//   - list[i].ID must equal i (identifiers exactly 0..N-1, in order).
//   - All coordinates must be finite (no NaN, no ±Inf).
//
// Errors: ErrIDSequence, ErrNonFiniteCoordinate.
//
// Complexity: O(n) time, O(n) space (defensive copy).
func NewSet(list []City) (*Set, error) {
	var (
		i int  // loop index
		c City // current city under validation
	)
	for i = 0; i < len(list); i++ {
		c = list[i]
		if c.ID != i {
			return nil, ErrIDSequence
		}
		if !isFinite(c.X) || !isFinite(c.Y) {
			return nil, ErrNonFiniteCoordinate
		}
	}

	out := make([]City, len(list))
	copy(out, list)

	return &Set{cities: out}, nil
}

// FromCoordinates builds a Set from bare (x, y) pairs, assigning identifiers
// by position. Convenience for callers that read coordinates from JSON/CSV
// and have no identifiers of their own.
//
// Errors: ErrNonFiniteCoordinate.
//
// Complexity: O(n).
func FromCoordinates(coords [][2]float64) (*Set, error) {
	list := make([]City, len(coords))

	var i int
	for i = 0; i < len(coords); i++ {
		list[i] = City{ID: i, X: coords[i][0], Y: coords[i][1]}
	}

	return NewSet(list)
}

// Len returns the number of cities in the set. Nil-safe: a nil Set has size 0.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.cities)
}

// At returns the city at position i.
//
// Contract: 0 ≤ i < Len(); out-of-range access panics like slice indexing
// (programmer error, not user input - constructors already validated the data).
func (s *Set) At(i int) City {
	return s.cities[i]
}

// Cities returns a defensive copy of the underlying sequence, preserving order.
//
// Complexity: O(n) time and space.
func (s *Set) Cities() []City {
	if s == nil {
		return nil
	}
	out := make([]City, len(s.cities))
	copy(out, s.cities)

	return out
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
