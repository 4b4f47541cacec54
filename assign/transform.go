package assign

import "github.com/katalvlaran/taskmatch/matrix"

// Transform prepares a raw cost/time matrix for minimization according
// to the chosen criterion.
//
// Behavior:
//   - Cost: the values are taken as-is (the result is a plain copy).
//   - Time: every entry e becomes maxEntry − e, where maxEntry is the
//     largest value in the matrix. Inverting the scale turns "maximize
//     time efficiency" into an equivalent minimization: entries equal to
//     maxEntry map to 0 (most desirable), entries of 0 map to maxEntry
//     (least desirable).
//
// Contract:
//   - m must be non-nil and non-empty (any rectangular shape is fine).
//   - The criterion is checked first; ErrUnknownCriterion fires before
//     any matrix access.
//   - Pure function: m is never mutated, the result never aliases it.
//
// Complexity: O(r·c) time and memory.
func Transform(m matrix.Matrix, c Criterion) (*matrix.Dense, error) {
	// Stage 1: criterion must be known before any further processing.
	if err := validateCriterion(c); err != nil {
		return nil, err
	}

	// Stage 2: shape check.
	rows, cols, err := validateRect(m)
	if err != nil {
		return nil, err
	}

	// Stage 3: snapshot the input.
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
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

	// Cost criterion: identity transform.
	if c == Cost {
		return out, nil
	}

	// Stage 4 (Time): locate the maximum entry.
	maxEntry, err := out.At(0, 0)
	if err != nil {
		return nil, err
	}
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = out.At(i, j); err != nil {
				return nil, err
			}
			if v > maxEntry {
				maxEntry = v
			}
		}
	}

	// Stage 5 (Time): invert every entry against the maximum.
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = out.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, maxEntry-v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
