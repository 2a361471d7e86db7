// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// The determinant engines themselves never fail: invalid worker counts are
// clamped, the empty matrix yields 0 and NaN results are reported as 0.
// Errors exist only at the edges where runtime data enters the package.
// Panics are reserved for programmer errors (ragged literals, invalid option
// values).

package matrix

import "errors"

var (
	// ErrNonSquare is returned when a table handed to FromTable is not n×n.
	ErrNonSquare = errors.New("matrix: table is not square")

	// ErrUnknownMethod is returned by ParseMethod for unrecognised names.
	ErrUnknownMethod = errors.New("matrix: unknown determinant method")
)

// Panic messages for programmer errors (no magic strings at call sites).
const (
	panicNegativeSize   = "matrix: size must be >= 0"
	panicRaggedLiteral  = "matrix: FromRows: every row must have as many entries as there are rows"
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)
