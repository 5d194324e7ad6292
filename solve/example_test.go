package solve_test

import (
	"context"
	"fmt"

	"github.com/tourlab/tourlab/cities"
	"github.com/tourlab/tourlab/solve"
)

// ExampleSolver demonstrates solving a 4-city square with the exact DP
// solver: the optimal tour is the perimeter.
func ExampleSolver() {
	set, _ := cities.FromCoordinates([][2]float64{
		{0, 0}, {0, 10}, {10, 10}, {10, 0},
	})
	dist, _ := cities.NewDistanceMatrix(set)

	solver, _ := solve.New(solve.HeldKarp)
	res := solver.Solve(context.Background(), dist, solve.DefaultOptions())

	fmt.Println(res.Algorithm, res.Length)
	// Output:
	// held-karp 40
}

// ExampleSolver_guardrail shows the size guardrail surfacing as a failed
// result instead of a silent truncation.
func ExampleSolver_guardrail() {
	set, _ := cities.Random(15, 7, cities.DefaultWidth, cities.DefaultHeight)
	dist, _ := cities.NewDistanceMatrix(set)

	opts := solve.DefaultOptions()
	opts.BruteForceCityLimit = 12

	solver, _ := solve.New(solve.BruteForce)
	res := solver.Solve(context.Background(), dist, opts)

	fmt.Println(res.OK(), res.Err)
	// Output:
	// false solve: problem exceeds configured city limit
}
