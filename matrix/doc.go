// Package matrix offers the dense numeric grid behind the assignment
// solvers.
//
// The matrix package provides:
//
//   - The Matrix interface: bounds-checked At/Set access, Rows/Cols
//     queries, and deep Clone for aliasing-free pipelines.
//   - Dense, a row-major float64 implementation backed by a flat slice
//     with O(1) element access and O(r·c) memory.
//   - NewDenseFromRows for ingesting raw [][]float64 input with strict
//     shape validation (empty and ragged inputs are rejected).
//
// Dense is best for the small, fully populated cost matrices this
// module targets, where O(r·c) memory is a non-issue and cache-friendly
// scans dominate solver time.
//
// See the examples in the assign package for usage patterns.
package matrix
