// Package matrix: sentinel errors shared by constructors and accessors.
//
// All failures in this package are deterministic input-contract
// violations, surfaced as package-prefixed sentinels so that callers
// can branch with errors.Is without string matching.
package matrix

import "errors"

var (
	// ErrEmptyMatrix indicates a matrix with no rows or no columns.
	ErrEmptyMatrix = errors.New("matrix: must have at least one row and one column")

	// ErrRaggedRows indicates rows of differing lengths in a 2D input.
	ErrRaggedRows = errors.New("matrix: all rows must have the same length")

	// ErrOutOfRange indicates a row or column index outside valid range.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare indicates a square matrix was required but rows != cols.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrInvalidDimensions indicates requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNilMatrix indicates a nil matrix where a value was required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
