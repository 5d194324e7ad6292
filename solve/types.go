// Package solve: sentinel error set, algorithm enumeration, options and
// result types shared by all solvers.
//
// All solvers MUST report failures through these sentinels and tests MUST
// match them via errors.Is. No solver panics on user input.
package solve

import (
	"context"
	"errors"
	"time"

	"github.com/tourlab/tourlab/cities"
)

var (
	// ErrProblemTooLarge signals that the instance size exceeds the solver's
	// configured city limit. Exhaustive and subset-DP search grow too fast to
	// attempt silently; the caller decides whether to raise the limit or skip
	// the algorithm.
	ErrProblemTooLarge = errors.New("solve: problem exceeds configured city limit")

	// ErrCancelled signals a cooperative abort: the context was done while the
	// search was in flight. Distinguishable from ErrProblemTooLarge so a UI can
	// offer "try again with more time" versus "this size is infeasible".
	ErrCancelled = errors.New("solve: cancelled")

	// ErrStartOutOfRange signals Options.StartCity outside [0..N-1].
	ErrStartOutOfRange = errors.New("solve: start city out of range")

	// ErrBadOptions signals an internally inconsistent Options value
	// (negative limit or negative cancellation interval).
	ErrBadOptions = errors.New("solve: invalid options")

	// ErrNilMatrix is returned when a nil distance matrix is passed in.
	ErrNilMatrix = errors.New("solve: nil distance matrix")

	// ErrUnsupportedAlgorithm is returned by the factory for an unknown
	// Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("solve: unsupported algorithm")

	// ErrBadTour signals a tour that is not a permutation of 0..N-1
	// (wrong length, repeated or out-of-range identifier).
	ErrBadTour = errors.New("solve: malformed tour")
)

// Algorithm is the closed set of solver variants. The comparison layer
// iterates over these; there is no string-based dispatch.
type Algorithm int

const (
	// BruteForce - exhaustive permutation search, exact.
	BruteForce Algorithm = iota

	// NearestNeighbor - greedy construction heuristic, approximate.
	NearestNeighbor

	// HeldKarp - exact dynamic programming over visited-city subsets.
	HeldKarp
)

// String returns the stable tag used in logs, persistence and the API.
func (a Algorithm) String() string {
	switch a {
	case BruteForce:
		return "brute-force"
	case NearestNeighbor:
		return "nearest-neighbor"
	case HeldKarp:
		return "held-karp"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a tag (as produced by String) back to its Algorithm.
func ParseAlgorithm(tag string) (Algorithm, error) {
	switch tag {
	case "brute-force":
		return BruteForce, nil
	case "nearest-neighbor":
		return NearestNeighbor, nil
	case "held-karp":
		return HeldKarp, nil
	default:
		return 0, ErrUnsupportedAlgorithm
	}
}

// Algorithms returns all solver variants in canonical order.
func Algorithms() []Algorithm {
	return []Algorithm{BruteForce, NearestNeighbor, HeldKarp}
}

// Default guardrails and polling granularity. All of them are policy knobs
// carried in Options, not hard constants.
const (
	// DefaultBruteForceCityLimit caps exhaustive search: 12 cities mean
	// 11!/2 ≈ 2·10⁷ evaluated permutations, the practical ceiling for an
	// interactive run.
	DefaultBruteForceCityLimit = 12

	// DefaultHeldKarpCityLimit caps the subset DP: 18 cities mean
	// 2¹⁸·18 ≈ 4.7·10⁶ states, comfortably in memory; growth beyond that is
	// dominated by the 2ⁿ table.
	DefaultHeldKarpCityLimit = 18

	// DefaultCancelCheckInterval is the number of primitive operations
	// between cooperative cancellation polls.
	DefaultCancelCheckInterval = 1024

	// heldKarpHardCap bounds the bitmask width regardless of configuration.
	// Beyond ~31 cities the 2ⁿ·n state table cannot be allocated, so the
	// guardrail must reject such instances before the allocator is asked.
	heldKarpHardCap = 31
)

// Options configures a solver invocation. The zero value is not usable
// directly; start from DefaultOptions and override what you need.
type Options struct {
	// BruteForceCityLimit is the maximum N BruteForce accepts before
	// returning ErrProblemTooLarge. 0 selects the default.
	BruteForceCityLimit int

	// HeldKarpCityLimit is the maximum N HeldKarp accepts before returning
	// ErrProblemTooLarge. 0 selects the default; values above the bitmask
	// hard cap are clamped to it.
	HeldKarpCityLimit int

	// NearestNeighborMultiStart, when true, runs the greedy heuristic once
	// from every city and keeps the best tour (first wins on equal length).
	// Raises the heuristic to O(n³); still polynomial.
	NearestNeighborMultiStart bool

	// StartCity fixes the tour's starting city (default 0).
	StartCity int

	// CancelCheckInterval is the number of primitive operations between
	// context polls in the exact solvers. 0 selects the default.
	CancelCheckInterval int
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		BruteForceCityLimit: DefaultBruteForceCityLimit,
		HeldKarpCityLimit:   DefaultHeldKarpCityLimit,
		CancelCheckInterval: DefaultCancelCheckInterval,
	}
}

// normalized resolves the 0 ⇒ default knobs and clamps the Held-Karp limit
// to the bitmask hard cap. Negative knobs are rejected by validateOptions.
func (o Options) normalized() Options {
	if o.BruteForceCityLimit == 0 {
		o.BruteForceCityLimit = DefaultBruteForceCityLimit
	}
	if o.HeldKarpCityLimit == 0 {
		o.HeldKarpCityLimit = DefaultHeldKarpCityLimit
	}
	if o.HeldKarpCityLimit > heldKarpHardCap {
		o.HeldKarpCityLimit = heldKarpHardCap
	}
	if o.CancelCheckInterval == 0 {
		o.CancelCheckInterval = DefaultCancelCheckInterval
	}

	return o
}

// validateOptions checks option consistency against the instance size n.
//
// Complexity: O(1).
func validateOptions(o Options, n int) error {
	if o.BruteForceCityLimit < 0 || o.HeldKarpCityLimit < 0 || o.CancelCheckInterval < 0 {
		return ErrBadOptions
	}
	if o.StartCity < 0 || (n > 0 && o.StartCity >= n) {
		return ErrStartOutOfRange
	}

	return nil
}

// Result is the immutable record of one solver invocation.
//
// On success (Err == nil) Tour is a permutation of 0..N-1 beginning at the
// start city; the cycle closes implicitly from the last city back to the
// first. On failure Tour is nil, Length is 0, and Err carries the sentinel
// (ErrProblemTooLarge, ErrCancelled, …). Elapsed and Operations are filled
// in either case.
type Result struct {
	Algorithm  Algorithm
	Tour       []int
	Length     float64
	Elapsed    time.Duration
	Operations int64
	Err        error
}

// OK reports whether the invocation produced a valid tour.
func (r Result) OK() bool { return r.Err == nil }

// Solver is the single capability shared by all algorithm variants: one
// side-effect-free run over read-only inputs yielding a fresh Result.
// Implementations retain no state between invocations and are safe for
// concurrent use.
type Solver interface {
	// Algorithm identifies the variant.
	Algorithm() Algorithm

	// Solve computes a tour over dist. Failures are reported inside the
	// Result (Err field), never by panic.
	Solve(ctx context.Context, dist *cities.DistanceMatrix, opts Options) Result
}

// New returns the solver for the given variant.
func New(a Algorithm) (Solver, error) {
	switch a {
	case BruteForce:
		return bruteForceSolver{}, nil
	case NearestNeighbor:
		return nearestNeighborSolver{}, nil
	case HeldKarp:
		return heldKarpSolver{}, nil
	default:
		return nil, ErrUnsupportedAlgorithm
	}
}
