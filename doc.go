// Package tourlab compares exact and heuristic solvers for the
// Travelling Salesman Problem over small sets of 2D cities.
//
// 🚀 What is tourlab?
//
//	A deterministic, instrumented TSP engine that brings together:
//		• cities/  — immutable city sets, euclidean distance matrices, seeded generators
//		• solve/   — three solvers behind one capability:
//		             brute force (exact, O((n−1)!)),
//		             nearest neighbor (greedy, O(n²), optional multi-start),
//		             Held–Karp (exact DP, O(n²·2ⁿ))
//		• compare/ — runs any selection of solvers against one shared matrix,
//		             measures elapsed time and primitive operations, and derives
//		             optimality gaps and speedups across the batch
//		• scores/  — SQLite-backed high-score persistence
//		• config/  — YAML configuration for limits, logging and storage
//		• server/  — a small JSON API for external front-ends
//
// ✨ Why choose tourlab?
//
//   - Deterministic – fixed tie-breaks, seeded instances, reproducible tours
//   - Honest accounting – wall-clock time and primitive operation counts per run
//   - Cooperative – long exact searches poll for cancellation, never block an abort
//   - Pure algorithm core – persistence and transport live at the edges
//
// Quick ASCII example:
//
//	    0───1
//	    │   │        4 cities on a square ⇒ the optimal tour is the
//	    3───2        perimeter: 0→1→2→3→0, length 4·side.
//
// Start with cities.NewSet and compare.NewEngine; see the solve package
// docs for per-algorithm contracts, complexity and guardrails.
package tourlab
