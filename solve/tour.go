// Package solve - tour utilities shared by all solvers.
//
// A tour is an open permutation of the city indices 0..N-1; the cycle
// closes implicitly from the last city back to the first. Helpers here are
// intentionally minimal and side-effect free.
//
// Design:
//   - Strict sentinels from types.go on any invalid input.
//   - Stable summation: lengths are rounded to 1e-9 so the same tour yields
//     the same cost across platforms and summation orders.
package solve

import (
	"context"
	"math"
	"time"

	"github.com/tourlab/tourlab/cities"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting optimality.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// TourCost returns the stabilized total length of the closed cycle
// described by tour: the sum of consecutive distances plus the closing
// edge from the last city back to the first.
//
// Contract:
//   - dist non-nil (ErrNilMatrix otherwise),
//   - tour must be a permutation of 0..Dim()-1 (ErrBadTour otherwise),
//   - empty and single-city tours cost 0.
//
// Complexity: O(n) time, O(n) space (the permutation check).
func TourCost(dist *cities.DistanceMatrix, tour []int) (float64, error) {
	if dist == nil {
		return 0, ErrNilMatrix
	}
	n := dist.Dim()
	if err := validateTour(tour, n); err != nil {
		return 0, err
	}
	if len(tour) <= 1 {
		return 0, nil
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < len(tour)-1; i++ {
		sum += dist.At(tour[i], tour[i+1])
	}
	sum += dist.At(tour[len(tour)-1], tour[0]) // closing edge

	return round1e9(sum), nil
}

// validateTour verifies that tour is a permutation of 0..n-1.
//
// Complexity: O(n) time, O(n) space.
func validateTour(tour []int, n int) error {
	if len(tour) != n {
		return ErrBadTour
	}

	seen := make([]bool, n)
	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n || seen[v] {
			return ErrBadTour
		}
		seen[v] = true
	}

	return nil
}

// trivialTour handles the degenerate instances shared by every solver:
// N == 0 (empty tour) and N == 1 (the sole city, zero length). Returns
// (tour, handled).
//
// Complexity: O(1).
func trivialTour(n int) ([]int, bool) {
	switch n {
	case 0:
		return []int{}, true
	case 1:
		return []int{0}, true
	default:
		return nil, false
	}
}

// canceller polls a context at a configurable operation granularity so hot
// loops pay one integer decrement per operation instead of a channel read.
type canceller struct {
	ctx      context.Context
	interval int
	left     int
}

// newCanceller builds a poller checking ctx every interval operations.
func newCanceller(ctx context.Context, interval int) *canceller {
	return &canceller{ctx: ctx, interval: interval, left: interval}
}

// tick counts one operation and reports true when the context is done.
//
// Complexity: O(1) amortized; a channel poll every interval ticks.
func (c *canceller) tick() bool {
	c.left--
	if c.left > 0 {
		return false
	}
	c.left = c.interval

	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}

// runTimed wraps a solver body with wall-clock measurement and assembles
// the immutable Result, collapsing failed runs to the no-tour form.
func runTimed(a Algorithm, body func() ([]int, float64, int64, error)) Result {
	started := time.Now()
	tour, length, ops, err := body()
	elapsed := time.Since(started)

	if err != nil {
		return Result{Algorithm: a, Elapsed: elapsed, Operations: ops, Err: err}
	}

	return Result{
		Algorithm:  a,
		Tour:       tour,
		Length:     round1e9(length),
		Elapsed:    elapsed,
		Operations: ops,
	}
}
