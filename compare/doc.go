// Package compare orchestrates solver runs against one shared distance
// matrix and derives relative metrics across the batch.
//
// The Engine accepts a city set and a selection of algorithms, derives the
// DistanceMatrix once, and runs every selected solver concurrently - each
// invocation is side-effect free over read-only inputs, so no
// synchronization is needed beyond the final join. A solver failing with
// ErrProblemTooLarge or ErrCancelled becomes a failed entry in the batch;
// it never aborts its siblings.
//
// After the join the engine computes, for each successful entry:
//   - the optimality gap relative to the best exact tour in the batch
//     ((length − best exact) / best exact; omitted when no exact solver
//     succeeded), and
//   - the speedup factor relative to the slowest run's elapsed time.
//
// Both metrics need the complete batch, which is why they are derived only
// after the barrier.
package compare
