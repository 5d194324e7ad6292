// Package cities: sentinel error set and core value types.
// All constructors MUST return these sentinels and tests MUST check them
// via errors.Is. No constructor panics on user-supplied data.
package cities

import "errors"

var (
	// ErrNilSet is returned when a nil *Set is passed where a set is required.
	ErrNilSet = errors.New("cities: nil city set")

	// ErrNonFiniteCoordinate signals a NaN or ±Inf coordinate in the input.
	ErrNonFiniteCoordinate = errors.New("cities: non-finite coordinate")

	// ErrIDSequence signals that identifiers are not exactly 0..N-1 in order
	// (duplicate, gap, or out-of-position identifier).
	ErrIDSequence = errors.New("cities: identifiers must be exactly 0..N-1")

	// ErrNegativeCount is returned by generators asked for a negative number
	// of cities.
	ErrNegativeCount = errors.New("cities: negative city count")
)

// IsInvalidInput reports whether err is one of the malformed-input sentinels
// of this package. Callers that only need the error *kind* (e.g. a comparison
// batch recording a failed run) match through this instead of enumerating
// sentinels.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrNilSet) ||
		errors.Is(err, ErrNonFiniteCoordinate) ||
		errors.Is(err, ErrIDSequence) ||
		errors.Is(err, ErrNegativeCount)
}

// City is a labeled 2D point. The identifier is its position inside the
// owning Set; coordinates are finite real numbers. Values are immutable
// once the Set is constructed.
type City struct {
	ID int
	X  float64
	Y  float64
}

// Set is an immutable ordered collection of cities.
//
// Invariant: cities[i].ID == i for every i; all coordinates finite.
// A Set is read-only once built and safe for concurrent use.
type Set struct {
	cities []City
}
