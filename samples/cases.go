// SPDX-License-Identifier: MIT

package samples

import (
	"sort"
	"strings"

	"github.com/katalvlaran/lvdet/matrix"
)

// Case is a literal matrix with its exact determinant.
type Case struct {
	Name     string
	Matrix   *matrix.Matrix[int64]
	Expected float64
}

// literal holds the table of one built-in case.
type literal struct {
	rows     [][]int64
	expected float64
}

var literals = map[string]literal{
	"A": {[][]int64{
		{1, 0, 2, 0, 1, 2},
		{0, 0, 3, 0, 0, 1},
		{0, 3, 0, 2, 2, 0},
		{4, 0, 7, 0, 6, 2},
		{0, 3, 0, 3, 0, 0},
		{0, 1, 2, 0, 0, 4},
	}, -42},
	"B": {[][]int64{
		{25, -3, 15, -10, 5},
		{-3, 48, 19, 68, -10},
		{15, 19, 7, -16, 5},
		{-10, 68, -16, 10, -8},
		{5, -10, 5, -8, 40},
	}, -24401688},
	"C": {[][]int64{
		{0, 0, 3, 0, 0},
		{0, 3, 0, 2, 2},
		{4, 0, 7, 0, 6},
		{0, 3, 0, 3, 0},
		{0, 1, 2, 0, 0},
	}, 72},
	"D": {[][]int64{
		{0, 3, 0, 0, 1},
		{3, 0, 2, 2, 0},
		{0, 7, 0, 6, 2},
		{3, 0, 3, 0, 0},
		{1, 2, 0, 0, 4},
	}, 174},
	"E": {[][]int64{
		{0, 0, 0, 0, 1},
		{0, 3, 2, 2, 0},
		{4, 0, 0, 6, 2},
		{0, 3, 3, 0, 0},
		{0, 1, 0, 0, 4},
	}, 24},
	"F": {[][]int64{
		{0, 0, 3, 0, 1},
		{0, 3, 0, 2, 0},
		{4, 0, 7, 6, 2},
		{0, 3, 0, 0, 0},
		{0, 1, 2, 0, 4},
	}, 240},
	"G": {[][]int64{
		{0, 3, 0, 0, 1},
		{0, 0, 2, 2, 0},
		{4, 7, 0, 6, 2},
		{0, 0, 3, 0, 0},
		{0, 2, 0, 0, 4},
	}, -240},
	"H": {[][]int64{
		{0, 0, 3, 0, 1},
		{0, 3, 0, 2, 0},
		{4, 0, 7, 0, 2},
		{0, 3, 0, 3, 0},
		{0, 1, 2, 0, 4},
	}, -120},
}

// Names returns the names of the built-in cases in ascending order.
func Names() []string {
	names := make([]string, 0, len(literals))
	for name := range literals {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Lookup returns the case called name (case-insensitive).
func Lookup(name string) (Case, bool) {
	key := strings.ToUpper(strings.TrimSpace(name))
	lit, ok := literals[key]
	if !ok {
		return Case{}, false
	}

	return Case{Name: key, Matrix: matrix.FromRows(lit.rows), Expected: lit.expected}, true
}

// Cases returns every built-in case, ordered by name.
func Cases() []Case {
	names := Names()
	out := make([]Case, 0, len(names))
	for _, name := range names {
		c, _ := Lookup(name)
		out = append(out, c)
	}

	return out
}
