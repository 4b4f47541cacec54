package assign

import "github.com/katalvlaran/taskmatch/matrix"

// Balance pads a rectangular matrix into a square one of side
// max(rows, cols) by appending zero-valued rows or columns.
//
// Behavior:
//   - rows < cols: (cols − rows) zero rows are appended after the
//     original rows.
//   - rows > cols: (rows − cols) zero columns are appended after the
//     original columns.
//   - rows == cols: the result is a plain copy of the input.
//
// Invariant: every original entry keeps its (row, col) position; only
// trailing rows or trailing columns are synthetic. A zero padding value
// never biases the optimum of a minimization over non-negative entries.
//
// Contract: m must be non-nil and non-empty. Pure function: m is never
// mutated, the result never aliases it (callers must not assume
// aliasing even in the already-square case).
//
// Complexity: O(n²) time and memory, n = max(rows, cols).
func Balance(m matrix.Matrix) (*matrix.Dense, error) {
	// Stage 1: shape check.
	rows, cols, err := validateRect(m)
	if err != nil {
		return nil, err
	}

	// Stage 2: allocate the square result, zero-initialized.
	// NewDense zeroes the storage, so padding cells need no extra pass.
	n := rows
	if cols > n {
		n = cols
	}
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	// Stage 3: copy original entries into their original positions.
	var (
		i, j int     // scan indices
		v    float64 // current entry
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
