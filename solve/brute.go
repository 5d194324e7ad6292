// Package solve - exhaustive permutation search (exact).
//
// BruteForce fixes the start city (eliminating the n equivalent rotations
// of every cycle) and enumerates the permutations of the remaining cities
// in lexicographic order. Mirror-image duplicates are pruned by evaluating
// only permutations whose first remaining city is smaller than the last;
// on a symmetric matrix the reversed tour has identical length, so this
// halves the search space without losing the optimum.
//
// Determinism: lexicographic enumeration plus strict improvement (<) means
// the first permutation achieving the minimum wins.
//
// Complexity: O((n−1)!) evaluated permutations, O(n) per evaluation,
// O(n) working space.
//
// Operation metric: permutations fully evaluated.
package solve

import (
	"context"
	"math"

	"github.com/tourlab/tourlab/cities"
)

type bruteForceSolver struct{}

// Algorithm identifies the variant.
func (bruteForceSolver) Algorithm() Algorithm { return BruteForce }

// Solve runs the exhaustive search. See the file header for contracts.
func (bruteForceSolver) Solve(ctx context.Context, dist *cities.DistanceMatrix, opts Options) Result {
	return runTimed(BruteForce, func() ([]int, float64, int64, error) {
		return bruteForce(ctx, dist, opts)
	})
}

func bruteForce(ctx context.Context, dist *cities.DistanceMatrix, opts Options) ([]int, float64, int64, error) {
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
	// Guardrail: factorial growth makes larger instances infeasible.
	if n > opts.BruteForceCityLimit {
		return nil, 0, 0, ErrProblemTooLarge
	}

	start := opts.StartCity

	// Remaining cities in ascending order - the lexicographic base case.
	perm := make([]int, 0, n-1)
	var i int
	for i = 0; i < n; i++ {
		if i != start {
			perm = append(perm, i)
		}
	}
	last := len(perm) - 1

	var (
		best     = math.Inf(1)
		bestTour []int
		ops      int64
		sum      float64
		cancel   = newCanceller(ctx, opts.CancelCheckInterval)
	)

	for {
		// Mirror pruning: evaluate only one orientation of each cycle.
		if last == 0 || perm[0] < perm[last] {
			sum = dist.At(start, perm[0])
			for i = 0; i < last; i++ {
				sum += dist.At(perm[i], perm[i+1])
			}
			sum += dist.At(perm[last], start) // closing edge

			ops++
			if sum < best {
				best = sum
				bestTour = make([]int, 0, n)
				bestTour = append(bestTour, start)
				bestTour = append(bestTour, perm...)
			}

			if cancel.tick() {
				return nil, 0, ops, ErrCancelled
			}
		}

		if !nextPermutation(perm) {
			break
		}
	}

	return bestTour, best, ops, nil
}

// nextPermutation advances p to its lexicographic successor in place,
// returning false when p is already the last permutation.
//
// Complexity: O(n) worst case, O(1) amortized over a full enumeration.
func nextPermutation(p []int) bool {
	// Longest non-increasing suffix; i is the pivot left of it.
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	// Rightmost element greater than the pivot.
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]

	// Reverse the suffix to restore ascending order.
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
