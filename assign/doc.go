// Package assign solves the assignment problem: matching N agents to
// M tasks one-to-one so that the total cost (or time) is optimized.
//
// 🚀 What is the assignment problem?
//
//	Given a cost matrix where entry (i, j) prices agent i on task j,
//	find a bijection between agents and tasks minimizing the total.
//	It shows up everywhere:
//	  • Workforce / job-shop scheduling
//	  • Machine-to-order allocation
//	  • Tracker-to-detection matching
//	  • Bipartite resource dispatch
//
// ✨ Key features:
//   - Cost and Time criteria: Time inverts entries against the matrix
//     maximum, so "maximize efficiency" becomes plain minimization
//   - Rectangular inputs welcome: Balance zero-pads to square without
//     biasing the optimum
//   - Two interchangeable strategies on the same working matrix:
//     ExactHungarian — self-contained O(n³) Kuhn–Munkres, provably optimal
//     GreedyMin      — iterative minimum selection, fast but approximate
//   - Deterministic throughout: fixed tie-breaks, no randomness
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/taskmatch/assign"
//
//	working, err := assign.PrepareWorkingMatrix(raw, assign.Cost)
//	if err != nil { ... }
//
//	res, err := assign.Solve(working, assign.ExactHungarian)
//	if err != nil { ... }
//	for _, p := range res.Pairs {
//	  fmt.Printf("agent %d → task %d\n", p.Agent, p.Task)
//	}
//	fmt.Println("total:", res.TotalCost)
//
// Performance:
//
//   - Time:   O(n³) for both solvers, n = max(rows, cols)
//   - Memory: O(n²) working copies; inputs are never mutated
//
// Everything is a pure function over immutable snapshots: no session
// state, no logging, no I/O. Failure modes are sentinel errors detected
// eagerly at the first operation whose precondition is violated.
//
// See examples in example_test.go for detailed walkthroughs.
package assign
