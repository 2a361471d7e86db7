// SPDX-License-Identifier: MIT

package samples

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvdet/matrix"
)

// hilbertConstant is the constant A of the asymptotic formula
// det(H_n) ~ A·(2π)^n / (n^{1/4}·4^{n²}).
const hilbertConstant = 0.6450024485095770846589610077219

// randomCeil bounds the entries produced by Random and Triangle: [0, randomCeil).
const randomCeil = 10

// Hilbert returns the n×n Hilbert matrix, H[i][j] = 1/(i+j+1).
func Hilbert(n int) *matrix.Matrix[float64] {
	m := matrix.New[float64](n)
	for i := 0; i < n; i++ {
		row := m.Row(i)
		for j := range row {
			row[j] = 1.0 / float64(i+j+1)
		}
	}

	return m
}

// ExpectedHilbert returns the closed-form asymptotic determinant of the n×n
// Hilbert matrix.
func ExpectedHilbert(n int) float64 {
	fn := float64(n)
	return hilbertConstant * math.Pow(2*math.Pi, fn) / (math.Pow(fn, 0.25) * math.Pow(4, fn*fn))
}

// Diagonal returns the n×n matrix with v on the diagonal and 0 elsewhere.
// Its determinant is v^n.
func Diagonal(n int, v int64) *matrix.Matrix[int64] {
	m := matrix.New[int64](n)
	for i := 0; i < n; i++ {
		m.Row(i)[i] = v
	}

	return m
}

// Triangle returns an n×n upper-triangular matrix with v on the diagonal and
// entries drawn from rng above it. Its determinant is v^n.
func Triangle(rng *rand.Rand, n int, v int64) *matrix.Matrix[int64] {
	m := matrix.New[int64](n)
	for i := 0; i < n; i++ {
		row := m.Row(i)
		row[i] = v
		for j := i + 1; j < n; j++ {
			row[j] = rng.Int63n(randomCeil)
		}
	}

	return m
}

// Random returns an n×n matrix with entries drawn from rng in [0, 10).
func Random(rng *rand.Rand, n int) *matrix.Matrix[int64] {
	m := matrix.New[int64](n)
	for i := 0; i < n; i++ {
		row := m.Row(i)
		for j := range row {
			row[j] = rng.Int63n(randomCeil)
		}
	}

	return m
}
