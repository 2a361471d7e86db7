// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the container and the engines.
package matrix

import (
	"fmt"
	"strings"
)

// Number is the element constraint of Matrix: every Go integer and floating
// kind. Engines read elements through a float64 conversion.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Method selects the determinant algorithm.
type Method int

const (
	// LU is partial-pivot Gaussian elimination. It is the zero value.
	LU Method = iota
	// Laplace is permutation (cofactor) expansion with factorial cost.
	Laplace
)

// Method names, as accepted by ParseMethod and printed by String.
const (
	methodNameLU      = "lu"
	methodNameLaplace = "laplace"
)

// String returns the lower-case method name.
func (m Method) String() string {
	switch m {
	case LU:
		return methodNameLU
	case Laplace:
		return methodNameLaplace
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod maps a case-insensitive name ("lu", "laplace") to a Method.
// Returns ErrUnknownMethod for anything else.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case methodNameLU:
		return LU, nil
	case methodNameLaplace:
		return Laplace, nil
	default:
		return LU, fmt.Errorf("ParseMethod(%q): %w", name, ErrUnknownMethod)
	}
}
