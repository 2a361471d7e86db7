// SPDX-License-Identifier: MIT

// Package matrix - square container over a contiguous row-major buffer.
//
// Purpose:
//   - Own an n×n table of T; n is fixed at construction.
//   - Hand out rows as mutable slices that share the backing buffer.
//
// Notes:
//   - Row slices are capped at n, so append on a row never spills into the
//     next one.
//   - Indices are not checked beyond Go's own slice bounds.
package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a dense square table of numeric elements.
//   - n is the row count and the column count.
//   - rows[i] is a window of length n (and capacity n) over one flat buffer.
type Matrix[T Number] struct {
	n    int
	rows [][]T
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// Empty returns the 0×0 matrix.
func Empty[T Number]() *Matrix[T] {
	return &Matrix[T]{}
}

// New returns an n×n matrix of zeros. A negative n panics.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New[T Number](n int) *Matrix[T] {
	var zero T
	return NewFilled(n, zero)
}

// NewFilled returns an n×n matrix with every entry set to v. A negative n
// panics.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewFilled[T Number](n int, v T) *Matrix[T] {
	if n < 0 {
		panic(panicNegativeSize)
	}
	m := alloc[T](n)
	if v != 0 {
		for _, row := range m.rows {
			for j := range row {
				row[j] = v
			}
		}
	}

	return m
}

// FromRows builds a matrix from literal rows, e.g.
//
//	matrix.FromRows([][]int64{{1, 2}, {3, 4}})
//
// The outer length fixes n. A row whose length differs from n is a programmer
// error and panics; use FromTable for data read at runtime.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func FromRows[T Number](rows [][]T) *Matrix[T] {
	if err := validateTable(rows); err != nil {
		panic(panicRaggedLiteral)
	}

	return fill(rows)
}

// FromTable builds a matrix from runtime data.
//
// Errors:
//   - ErrNonSquare when any row length differs from the number of rows.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func FromTable[T Number](rows [][]T) (*Matrix[T], error) {
	if err := validateTable(rows); err != nil {
		return nil, fmt.Errorf("FromTable: %w", err)
	}

	return fill(rows), nil
}

// alloc creates the n×n zero matrix over one flat buffer.
func alloc[T Number](n int) *Matrix[T] {
	flat := make([]T, n*n)
	rows := make([][]T, n)
	for i := range rows {
		rows[i] = flat[i*n : (i+1)*n : (i+1)*n]
	}

	return &Matrix[T]{n: n, rows: rows}
}

// fill copies an already validated table into a fresh matrix.
func fill[T Number](src [][]T) *Matrix[T] {
	m := alloc[T](len(src))
	for i, row := range src {
		copy(m.rows[i], row)
	}

	return m
}

// Size returns n.
func (m *Matrix[T]) Size() int {
	if m == nil {
		return 0
	}
	return m.n
}

// Row returns row i as a mutable slice over the matrix storage.
// The caller must keep i in [0, Size()).
func (m *Matrix[T]) Row(i int) []T { return m.rows[i] }

// Clone returns a deep copy with its own storage.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return Empty[T]()
	}

	return fill(m.rows)
}

// String renders each row on its own line as "[a, b, c]".
//
// Complexity:
//   - Time O(n²), Space O(n²) for formatting.
func (m *Matrix[T]) String() string {
	if m == nil {
		return ""
	}
	var b strings.Builder
	for _, row := range m.rows {
		b.WriteString(_fmtRowOpen)
		for j, v := range row {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprint(&b, v)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
