// SPDX-License-Identifier: MIT

package matrix

import "math"

// extended is an unevaluated sum hi+lo of two float64 values (double-double).
// It carries about 106 significand bits, enough for the permutation expansion
// to cancel thousands of tiny signed products without drowning the result,
// e.g. for Hilbert matrices.
type extended struct {
	hi, lo float64
}

// twoSum returns s = fl(a+b) and the exact rounding error e, a+b == s+e.
func twoSum(a, b float64) (s, e float64) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)

	return s, e
}

// add returns x+y.
func (x extended) add(y extended) extended {
	s, e := twoSum(x.hi, y.hi)
	e += x.lo + y.lo
	hi, lo := twoSum(s, e)

	return extended{hi: hi, lo: lo}
}

// scale returns x*a. The rounding error of hi*a is recovered exactly with FMA.
func (x extended) scale(a float64) extended {
	p := x.hi * a
	e := math.FMA(x.hi, a, -p)
	e += x.lo * a
	hi, lo := twoSum(p, e)

	return extended{hi: hi, lo: lo}
}

// value rounds x to the nearest float64.
func (x extended) value() float64 { return x.hi + x.lo }
