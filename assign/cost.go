// Package assign — cost utilities shared by both solvers.
//
// This file provides a small, allocation-conscious helper to compute
// the total cost of an assignment against a given matrix. It is
// intentionally minimal and side-effect free.
//
// Design:
//   - Strict sentinels on any invalid input.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
package assign

import (
	"math"

	"github.com/katalvlaran/taskmatch/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms/opt levels without affecting
// which assignment is optimal.
const roundScale = 1e9

// PairsCost sums m[p.Agent][p.Task] over pairs.
//
// Contract:
//   - m must be square n×n; every index must lie in [0..n-1].
//   - Cost is evaluated against whatever matrix is supplied: callers
//     comparing solver outputs must pass the same working matrix the
//     solvers ran on.
//
// Complexity: O(len(pairs)).
func PairsCost(m matrix.Matrix, pairs []Pair) (float64, error) {
	// Shape guard.
	n, err := validateSquare(m)
	if err != nil {
		return 0, err
	}

	// Main accumulation.
	var (
		sum float64
		p   Pair
		w   float64
	)
	for _, p = range pairs {
		// Index range checks keep sentinel semantics centralized here.
		if p.Agent < 0 || p.Agent >= n || p.Task < 0 || p.Task >= n {
			return 0, matrix.ErrOutOfRange
		}
		if w, err = m.At(p.Agent, p.Task); err != nil {
			return 0, err
		}
		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// This keeps costs stable across platforms without affecting
// algorithmic correctness.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
