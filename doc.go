// Package lvdet computes determinants of square matrices with a configurable
// number of goroutines.
//
// 🚀 What is inside?
//
//	• matrix   – square container plus two determinant engines:
//	             partial-pivot LU elimination and permutation expansion
//	• barrier  – reusable generation barrier that keeps LU workers in lockstep
//	• metrics  – counters, gauges and histograms (prometheus or disabled)
//	• samples  – literal test matrices, Hilbert, diagonal, triangular and
//	             random generators
//	• cmd/lvdet – command-line front end (det, show, samples, bench)
//
// Quick start:
//
//	m := matrix.FromRows([][]int64{
//		{2, 0, 1},
//		{1, 3, 2},
//		{1, 1, 2},
//	})
//	det := m.Determinant(4, matrix.LU) // 6
//
// Guarantees:
//
//   - The input matrix is never mutated; concurrent calls on it are safe.
//   - Worker counts below 1 are clamped to 1.
//   - The 0×0 matrix has determinant 0.
//   - LU never returns NaN: a NaN product is reported as 0.
//
// See the matrix package for the full API.
package lvdet
