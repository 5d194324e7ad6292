// Package cities provides the input side of the TSP engine: immutable
// labeled 2D city sets and precomputed euclidean distance matrices.
//
// Model:
//   - City: a stable integer identifier plus finite (x, y) coordinates.
//   - Set: an ordered, read-only collection whose identifiers are exactly
//     0..N−1 with no duplicates or gaps (the identifier equals the position).
//   - DistanceMatrix: an N×N symmetric table of euclidean distances derived
//     once from a Set and never mutated afterwards. Any change to the city
//     layout requires a fresh matrix.
//
// Guarantees:
//   - d[i][j] == d[j][i] and d[i][i] == 0 by construction (computed once per
//     unordered pair, mirrored).
//   - The triangle inequality holds for every triple (distances are euclidean).
//   - Construction fails with strict sentinel errors on malformed input
//     (non-finite coordinates, broken identifier sequence); nothing is
//     silently repaired.
//
// The package also ships a deterministic seeded instance generator for
// benchmarks and tests; the same seed always produces the same map.
package cities
