// Package compare - the comparison engine.
//
// Design:
//   - One DistanceMatrix per Run, derived up front and shared read-only.
//   - One goroutine per selected solver; a WaitGroup barrier before metrics.
//   - Failures are data, not control flow: ErrProblemTooLarge / ErrCancelled
//     land in the batch as failed entries.
//   - Structured logging through zap; a nil logger degrades to a no-op.
package compare

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tourlab/tourlab/cities"
	"github.com/tourlab/tourlab/solve"
)

// Entry is one solver's outcome enriched with batch-relative metrics.
type Entry struct {
	solve.Result

	// Gap is the optimality gap relative to the best exact tour of the
	// batch: (Length − bestExact) / bestExact. Valid only when HasGap.
	Gap    float64
	HasGap bool

	// Speedup is slowestElapsed / Elapsed for successful entries; 0 for
	// failed ones. The slowest successful run has Speedup 1.
	Speedup float64
}

// Batch is the immutable outcome of one Engine.Run: entries in invocation
// order plus derived metrics. The batch owns its entries until discarded.
type Batch struct {
	Entries []Entry
}

// Best returns the shortest successful entry (ties break to the smaller
// elapsed time) and false when every solver failed.
func (b *Batch) Best() (Entry, bool) {
	var (
		best  Entry
		found bool
	)
	for _, e := range b.Entries {
		if !e.OK() {
			continue
		}
		if !found || e.Length < best.Length ||
			(e.Length == best.Length && e.Elapsed < best.Elapsed) {
			best = e
			found = true
		}
	}

	return best, found
}

// Ranked returns the entries sorted for display: successes by (length,
// elapsed) ascending, failures after them in invocation order.
func (b *Batch) Ranked() []Entry {
	out := make([]Entry, len(b.Entries))
	copy(out, b.Entries)

	sort.SliceStable(out, func(i, j int) bool {
		ei, ej := out[i], out[j]
		if ei.OK() != ej.OK() {
			return ei.OK()
		}
		if !ei.OK() {
			return false // keep failure order stable
		}
		if ei.Length != ej.Length {
			return ei.Length < ej.Length
		}

		return ei.Elapsed < ej.Elapsed
	})

	return out
}

// Engine runs solver selections over city sets. Engines are stateless
// between runs and safe for concurrent use.
type Engine struct {
	opts solve.Options
	log  *zap.Logger
}

// NewEngine builds an engine with the given solver options. A nil logger
// is replaced by zap.NewNop().
func NewEngine(opts solve.Options, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}

	return &Engine{opts: opts, log: log}
}

// Run derives the distance matrix from set, executes the selected
// algorithms concurrently, and returns the metric-enriched batch.
//
// Contract:
//   - set construction errors (nil set, bad coordinates) propagate to the
//     caller: without a matrix there is nothing to compare.
//   - an empty selection runs all algorithms.
//   - per-solver failures are recorded in the batch, never returned here.
//
// Complexity: matrix derivation O(n²); solver cost per algorithm.
func (e *Engine) Run(ctx context.Context, set *cities.Set, algos ...solve.Algorithm) (*Batch, error) {
	dist, err := cities.NewDistanceMatrix(set)
	if err != nil {
		return nil, err
	}
	if len(algos) == 0 {
		algos = solve.Algorithms()
	}

	e.log.Info("comparison started",
		zap.Int("cities", set.Len()),
		zap.Int("algorithms", len(algos)),
	)

	// One worker per algorithm; results land in their own slots, so the
	// only synchronization needed is the join.
	results := make([]solve.Result, len(algos))

	var wg sync.WaitGroup
	for i, a := range algos {
		solver, ferr := solve.New(a)
		if ferr != nil {
			results[i] = solve.Result{Algorithm: a, Err: ferr}

			continue
		}

		wg.Add(1)
		go func(slot int, s solve.Solver) {
			defer wg.Done()
			results[slot] = s.Solve(ctx, dist, e.opts)
		}(i, solver)
	}
	wg.Wait()

	for _, r := range results {
		if r.OK() {
			e.log.Info("solver finished",
				zap.Stringer("algorithm", r.Algorithm),
				zap.Float64("length", r.Length),
				zap.Duration("elapsed", r.Elapsed),
				zap.Int64("operations", r.Operations),
			)
		} else {
			e.log.Warn("solver failed",
				zap.Stringer("algorithm", r.Algorithm),
				zap.Duration("elapsed", r.Elapsed),
				zap.Error(r.Err),
			)
		}
	}

	return buildBatch(results), nil
}

// isExact reports whether the algorithm guarantees an optimal tour.
func isExact(a solve.Algorithm) bool {
	return a == solve.BruteForce || a == solve.HeldKarp
}

// buildBatch derives the cross-entry metrics once all results are in.
//
// Complexity: O(len(results)).
func buildBatch(results []solve.Result) *Batch {
	var (
		bestExact    float64
		hasExact     bool
		slowest      time.Duration
		sawSuccesses bool
	)
	for _, r := range results {
		if !r.OK() {
			continue
		}
		sawSuccesses = true
		if r.Elapsed > slowest {
			slowest = r.Elapsed
		}
		if isExact(r.Algorithm) && (!hasExact || r.Length < bestExact) {
			bestExact = r.Length
			hasExact = true
		}
	}

	batch := &Batch{Entries: make([]Entry, len(results))}
	for i, r := range results {
		entry := Entry{Result: r}
		if r.OK() && sawSuccesses {
			if hasExact && bestExact > 0 {
				entry.Gap = (r.Length - bestExact) / bestExact
				entry.HasGap = true
			}
			den := r.Elapsed
			if den <= 0 {
				den = time.Nanosecond
			}
			entry.Speedup = float64(slowest) / float64(den)
		}
		batch.Entries[i] = entry
	}

	return batch
}
