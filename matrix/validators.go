// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single place for the shape checks applied to tables entering the package.
//  - Return plain sentinels; callers wrap with their own context.

package matrix

import "math"

// validateTable reports ErrNonSquare unless every row of rows has len(rows)
// entries. The empty table is square.
//
// Complexity:
//   - Time O(n), Space O(1).
func validateTable[T Number](rows [][]T) error {
	n := len(rows)
	for _, row := range rows {
		if len(row) != n {
			return ErrNonSquare
		}
	}

	return nil
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
