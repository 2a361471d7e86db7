// Package matrix provides a dense square container for numeric elements and
// two concurrent determinant engines on top of it.
//
// The matrix package provides:
//
//   - Matrix[T], an n×n table over any Go integer or floating kind, built
//     empty, zero-filled, filled with a value, or from literal rows.
//   - An LU engine: partial-pivot Gaussian elimination run by a fixed set of
//     worker goroutines that meet at two barriers per pivot step and own
//     disjoint row ranges during elimination.
//   - A "Laplace" engine: full permutation expansion with a backtracking
//     column mask, the first-row columns split across workers. Its cost is
//     factorial in n; keep it to small matrices.
//   - A facade (Determinant, DeterminantLU, DeterminantLaplace, Det) that
//     clamps the worker count and dispatches.
//
// Determinant computation never mutates the receiver. Per-call state
// (workers, partition, tolerance, logger, metrics) lives in values passed down
// the call chain, so one Matrix may be used by many goroutines at once.
//
// By convention the determinant of the 0×0 matrix is 0.
package matrix
