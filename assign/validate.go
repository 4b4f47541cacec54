// Package assign - validation helpers shared by transform, balance and
// both solvers.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from
//     types.go and the matrix package.
//   - O(1) checks; shape sentinels fire before any algorithmic work.
package assign

import "github.com/katalvlaran/taskmatch/matrix"

// validateCriterion accepts only the known criteria.
// Runs before any matrix processing so that an unrecognized criterion
// fails ahead of transform work.
//
// Complexity: O(1).
func validateCriterion(c Criterion) error {
	switch c {
	case Cost, Time:
		return nil
	default:
		return ErrUnknownCriterion
	}
}

// validateRect verifies m is non-nil and non-empty, returning its shape.
//
// Complexity: O(1).
func validateRect(m matrix.Matrix) (rows, cols int, err error) {
	if m == nil {
		return 0, 0, matrix.ErrNilMatrix
	}
	rows, cols = m.Rows(), m.Cols()
	if rows <= 0 || cols <= 0 {
		return 0, 0, matrix.ErrEmptyMatrix
	}

	return rows, cols, nil
}

// validateSquare verifies m is non-nil, non-empty and square, returning
// the side n. Solvers call this before touching a single entry.
//
// Complexity: O(1).
func validateSquare(m matrix.Matrix) (int, error) {
	rows, cols, err := validateRect(m)
	if err != nil {
		return 0, err
	}
	if rows != cols {
		return 0, matrix.ErrNonSquare
	}

	return rows, nil
}
