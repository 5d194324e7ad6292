// Package solve - Held–Karp dynamic programming (exact).
//
// State: g(S, j) = minimum cost of a path that starts at the start city,
// visits exactly the cities in subset S (which always contains the start
// and j), and ends at j. Subsets are uint64 bitmasks over the city
// indices with the start bit always set.
//
// Recurrence:
//
//	g({start,j}, j) = d(start, j)                          (base)
//	g(S, j)         = min over k ∈ S\{j,start} of
//	                  g(S\{j}, k) + d(k, j)                (transition)
//	answer          = min over j≠start of g(Full, j) + d(j, start)
//
// Predecessors are stored beside every state so the optimal tour is
// reconstructed by walking them backwards from the best final city.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) space - exponential, but with a far
// smaller base than factorial search; Held–Karp overtakes brute force once
// n passes roughly 4-5.
//
// Operation metric: (subset, endpoint) states evaluated.
package solve

import (
	"context"
	"math"

	"github.com/tourlab/tourlab/cities"
)

type heldKarpSolver struct{}

// Algorithm identifies the variant.
func (heldKarpSolver) Algorithm() Algorithm { return HeldKarp }

// Solve runs the subset DP. See the file header for contracts.
func (heldKarpSolver) Solve(ctx context.Context, dist *cities.DistanceMatrix, opts Options) Result {
	return runTimed(HeldKarp, func() ([]int, float64, int64, error) {
		return heldKarp(ctx, dist, opts)
	})
}

func heldKarp(ctx context.Context, dist *cities.DistanceMatrix, opts Options) ([]int, float64, int64, error) {
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
	// Guardrail: the 2ⁿ table dominates memory well before time does.
	if n > opts.HeldKarpCityLimit {
		return nil, 0, 0, ErrProblemTooLarge
	}

	var (
		start     = opts.StartCity
		startBit  = uint64(1) << uint(start)
		full      = (uint64(1) << uint(n)) - 1
		size      = int(full) + 1
		dp        = make([]float64, size*n) // dp[mask*n+j] = g(mask, j)
		parent    = make([]int32, size*n)   // predecessor achieving the minimum
		ops       int64
		cancel    = newCanceller(ctx, opts.CancelCheckInterval)
		mask      uint64
		prev      uint64
		j, k      int
		w, cand   float64
		bestState float64
	)
	for i := range dp {
		dp[i] = math.Inf(1)
		parent[i] = -1
	}

	// Forward pass over all subsets containing the start city.
	for mask = startBit; mask <= full; mask++ {
		if mask&startBit == 0 {
			continue
		}
		for j = 0; j < n; j++ {
			if j == start || mask&(uint64(1)<<uint(j)) == 0 {
				continue
			}

			prev = mask &^ (uint64(1) << uint(j))
			ops++
			if cancel.tick() {
				return nil, 0, ops, ErrCancelled
			}

			if prev == startBit {
				// Base case: the path start→j.
				dp[mask*uint64(n)+uint64(j)] = dist.At(start, j)
				parent[mask*uint64(n)+uint64(j)] = int32(start)

				continue
			}

			bestState = math.Inf(1)
			for k = 0; k < n; k++ {
				if k == start || k == j || prev&(uint64(1)<<uint(k)) == 0 {
					continue
				}
				w = dp[prev*uint64(n)+uint64(k)]
				if math.IsInf(w, 1) {
					continue
				}
				cand = w + dist.At(k, j)
				if cand < bestState {
					bestState = cand
					parent[mask*uint64(n)+uint64(j)] = int32(k)
				}
			}
			dp[mask*uint64(n)+uint64(j)] = bestState
		}
	}

	// Close the cycle back to the start.
	var (
		best = math.Inf(1)
		last = -1
	)
	for j = 0; j < n; j++ {
		if j == start {
			continue
		}
		cand = dp[full*uint64(n)+uint64(j)] + dist.At(j, start)
		if cand < best {
			best = cand
			last = j
		}
	}
	if last < 0 || math.IsInf(best, 1) {
		// Unreachable for euclidean instances (the matrix is complete);
		// kept as a defensive invariant check.
		return nil, 0, ops, ErrBadTour
	}

	// Reconstruct the tour by walking predecessors backwards.
	var (
		tour = make([]int, n)
		idx  int
		p    int32
	)
	tour[0] = start
	mask = full
	j = last
	for idx = n - 1; idx >= 1; idx-- {
		tour[idx] = j
		p = parent[mask*uint64(n)+uint64(j)]
		mask &^= uint64(1) << uint(j)
		j = int(p)
	}

	return tour, best, ops, nil
}
