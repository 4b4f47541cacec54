// Package assign - unified entry points for the assignment pipeline.
//
// This file provides the canonical operations exposed to I/O
// collaborators (CLI, files, prompts):
//
//   - PrepareWorkingMatrix: raw [][]float64 + criterion → square
//     working matrix (criterion transform, then zero-padding).
//   - Solve: working matrix + method → Result, routed to the exact or
//     greedy solver.
//   - SolveRaw: the one-shot composition of the two.
//
// Design principles:
//   - Deterministic: neither solver uses randomness.
//   - Strict sentinels: validation failures surface the errors from
//     types.go and the matrix package; nothing is silently defaulted.
//   - Explicit values: the working matrix travels as a parameter
//     between pure functions; no session state is held anywhere.
package assign

import "github.com/katalvlaran/taskmatch/matrix"

// PrepareWorkingMatrix builds the square working matrix for one solve
// session from a raw cost/time grid and an optimization criterion.
//
// Pipeline: validate criterion → ingest raw rows → Transform → Balance.
//
// Contracts:
//   - raw must be rectangular and non-empty; ragged or empty input
//     fails with matrix.ErrRaggedRows / matrix.ErrEmptyMatrix.
//   - An unrecognized criterion fails with ErrUnknownCriterion before
//     the raw grid is even ingested.
//   - The result is freshly allocated; raw may be reused or mutated by
//     the caller afterwards.
//
// Complexity: O(n²) time and memory, n = max(rows, cols).
func PrepareWorkingMatrix(raw [][]float64, c Criterion) (*matrix.Dense, error) {
	// Stage 1: criterion sanity, ahead of any matrix work.
	if err := validateCriterion(c); err != nil {
		return nil, err
	}

	// Stage 2: ingest the raw grid (shape errors surface here).
	src, err := matrix.NewDenseFromRows(raw)
	if err != nil {
		// NewDenseFromRows returns matrix-level sentinels; forward as-is.
		return nil, err
	}

	// Stage 3: criterion transform (identity for Cost, inversion for Time).
	transformed, err := Transform(src, c)
	if err != nil {
		return nil, err
	}

	// Stage 4: square the matrix with zero padding.
	return Balance(transformed)
}

// Solve routes a prepared square working matrix to the chosen solver.
//
// Contracts:
//   - working must be square; both solvers fail on any other shape.
//   - Each call hands the solver its own private copy of the entries,
//     so concurrent Solve calls over the same working matrix are safe:
//     nothing is shared, nothing is locked.
//
// Errors: ErrUnknownMethod for an unrecognized method, otherwise the
// shape sentinels of the underlying solver.
//
// Complexity: O(n³) for both methods.
func Solve(working matrix.Matrix, method Method) (Result, error) {
	switch method {
	case ExactHungarian:
		return SolveExact(working)
	case GreedyMin:
		return SolveGreedy(working)
	default:
		return Result{}, ErrUnknownMethod
	}
}

// SolveRaw is the one-shot convenience: prepare the working matrix from
// a raw grid and solve it in a single call.
//
// Note: TotalCost is evaluated against the transformed, balanced
// working matrix, not against raw — callers needing to inspect that
// matrix should use PrepareWorkingMatrix + Solve directly.
//
// Complexity: O(n³).
func SolveRaw(raw [][]float64, c Criterion, method Method) (Result, error) {
	working, err := PrepareWorkingMatrix(raw, c)
	if err != nil {
		return Result{}, err
	}

	return Solve(working, method)
}
