// Package solve - nearest-neighbor construction heuristic (approximate).
//
// From the start city, repeatedly move to the closest unvisited city until
// all are visited; the cycle closes implicitly back to the start. Ties on
// equal candidate distance break to the lowest city identifier (candidates
// are scanned in ascending order with strict improvement), so the result
// is fully deterministic.
//
// Multi-start variant (Options.NearestNeighborMultiStart): run the greedy
// construction once from every city and keep the best tour; equal lengths
// keep the earliest (lowest) start. O(n³) instead of O(n²), still far
// below exact search, and typically narrows the optimality gap.
//
// The heuristic is polynomial, so it carries no size guardrail and does
// not poll for cancellation; for valid inputs it cannot fail.
//
// Operation metric: nearest-candidate comparisons performed.
package solve

import (
	"context"

	"github.com/tourlab/tourlab/cities"
)

type nearestNeighborSolver struct{}

// Algorithm identifies the variant.
func (nearestNeighborSolver) Algorithm() Algorithm { return NearestNeighbor }

// Solve runs the greedy construction. See the file header for contracts.
func (nearestNeighborSolver) Solve(_ context.Context, dist *cities.DistanceMatrix, opts Options) Result {
	return runTimed(NearestNeighbor, func() ([]int, float64, int64, error) {
		return nearestNeighbor(dist, opts)
	})
}

func nearestNeighbor(dist *cities.DistanceMatrix, opts Options) ([]int, float64, int64, error) {
	if dist == nil {
		return nil, 0, 0, ErrNilMatrix
	}
	opts = opts.normalized()

	n := dist.Dim()
	if err := validateOptions(opts, n); err != nil {
		return nil, 0, 0, err
	}
	if t, ok := trivialTour(n); ok {
		return t, 0, 0, nil
	}

	if !opts.NearestNeighborMultiStart {
		tour, length, ops := greedyFrom(dist, opts.StartCity)

		return tour, length, ops, nil
	}

	// Multi-start: best over all n greedy tours; strict < keeps the
	// earliest start on ties.
	var (
		bestTour []int
		bestLen  float64
		ops      int64
		s        int
	)
	for s = 0; s < n; s++ {
		tour, length, comparisons := greedyFrom(dist, s)
		ops += comparisons
		if bestTour == nil || length < bestLen {
			bestTour = tour
			bestLen = length
		}
	}

	return bestTour, bestLen, ops, nil
}

// greedyFrom builds one nearest-neighbor tour starting at start and returns
// it with its total length and the number of candidate comparisons.
//
// Complexity: O(n²) time, O(n) space.
func greedyFrom(dist *cities.DistanceMatrix, start int) ([]int, float64, int64) {
	n := dist.Dim()

	var (
		visited = make([]bool, n)
		tour    = make([]int, 0, n)
		ops     int64
		length  float64
		cur     = start
	)
	visited[start] = true
	tour = append(tour, start)

	var (
		step    int
		c       int     // candidate city index
		nearest int     // best candidate so far
		w, bw   float64 // candidate / best distances
	)
	for step = 1; step < n; step++ {
		nearest = -1
		// Ascending scan + strict improvement ⇒ lowest identifier wins ties.
		for c = 0; c < n; c++ {
			if visited[c] {
				continue
			}
			w = dist.At(cur, c)
			ops++
			if nearest < 0 || w < bw {
				nearest = c
				bw = w
			}
		}

		visited[nearest] = true
		tour = append(tour, nearest)
		length += bw
		cur = nearest
	}

	length += dist.At(cur, start) // closing edge

	return tour, round1e9(length), ops
}
