// Package cities - precomputed euclidean distance matrices.
//
// The matrix is stored as a flat row-major []float64 (d[i*n+j]) so solver
// hot loops read it without interface indirection or per-row pointer chases.
// Symmetry is by construction: each unordered pair is computed once with
// math.Hypot and mirrored.
package cities

import "math"

// DistanceMatrix is an immutable N×N table of pairwise euclidean distances
// over one Set.
//
// Invariants (established at construction, never re-checked in hot paths):
//   - At(i, j) == At(j, i) for all i, j,
//   - At(i, i) == 0,
//   - all entries finite and non-negative,
//   - the triangle inequality holds (euclidean metric).
//
// A DistanceMatrix is read-only and safe for concurrent use by any number
// of solvers.
type DistanceMatrix struct {
	n int
	d []float64 // row-major, len n*n
}

// NewDistanceMatrix derives the distance table from s.
//
// Contract:
//   - s must be non-nil (ErrNilSet otherwise); N == 0 yields an empty matrix.
//   - Set construction already guarantees finite coordinates, so no entry
//     can be NaN/Inf; the constructor still guards against a hand-rolled
//     Set zero value carrying bad data.
//
// Complexity: O(n²) time and space.
func NewDistanceMatrix(s *Set) (*DistanceMatrix, error) {
	if s == nil {
		return nil, ErrNilSet
	}

	n := s.Len()
	m := &DistanceMatrix{n: n, d: make([]float64, n*n)}

	var (
		i, j int     // pair indices (upper triangle)
		a, b City    // cities of the current pair
		w    float64 // euclidean distance of the pair
	)
	for i = 0; i < n; i++ {
		a = s.cities[i]
		if !isFinite(a.X) || !isFinite(a.Y) {
			return nil, ErrNonFiniteCoordinate
		}
		for j = i + 1; j < n; j++ {
			b = s.cities[j]
			// Compute once per unordered pair, mirror into both cells.
			w = math.Hypot(b.X-a.X, b.Y-a.Y)
			m.d[i*n+j] = w
			m.d[j*n+i] = w
		}
	}

	return m, nil
}

// Dim returns the matrix order N.
func (m *DistanceMatrix) Dim() int {
	if m == nil {
		return 0
	}

	return m.n
}

// At returns the distance between cities i and j.
//
// Contract: 0 ≤ i, j < Dim(). Out-of-range indices panic like slice
// indexing; solvers validate city indices before their hot loops, so a
// panic here is a programming error, not a data error.
//
// Complexity: O(1), no allocations.
func (m *DistanceMatrix) At(i, j int) float64 {
	return m.d[i*m.n+j]
}
