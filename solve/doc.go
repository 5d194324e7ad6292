// Package solve provides the three TSP solvers of the engine behind one
// capability.
//
// Algorithms (all consume a shared, read-only cities.DistanceMatrix):
//
//   - BruteForce — exhaustive permutation search; exact.
//     Complexity: O((n−1)!) time, O(n) working space.
//     The start city is fixed (removing the n rotational duplicates) and
//     mirror-image tours are pruned, halving the search space.
//
//   - NearestNeighbor — greedy heuristic; approximate.
//     Complexity: O(n²) time, O(n) space; O(n³) with multi-start.
//     Ties on equal candidate distance break to the lowest city identifier.
//
//   - HeldKarp — dynamic programming over visited-city subsets; exact.
//     Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) space.
//     Subsets are bitmasks over the city indices with the start bit always
//     set; predecessors are recorded for full tour reconstruction.
//
// Every invocation is side-effect free and returns a fresh Result carrying
// the tour, its stabilized length, elapsed wall-clock time, a machine-
// independent primitive operation count, and an error on failure. Exact
// solvers poll ctx cooperatively (every Options.CancelCheckInterval
// operations) so interactive callers can abort runs that exceed a time
// budget; an aborted run reports ErrCancelled, never a partial tour.
//
// Guardrails: BruteForce and HeldKarp reject instances above their
// configured city limits with ErrProblemTooLarge - a policy decision
// surfaced to the caller, never a silent truncation. NearestNeighbor is
// polynomial and has no size guardrail.
//
// Determinism: fixed enumeration orders and tie-breaks mean the same
// matrix, options and algorithm always yield an identical tour and length.
package solve
