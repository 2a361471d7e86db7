// SPDX-License-Identifier: MIT

// Package matrix - float64 working copy used by the LU engine.
//
// Purpose:
//   - Detach elimination from the caller's element type and storage.
//   - Keep a cache-friendly row-major buffer with offset i*n + j.
package matrix

// workTable is the per-call float64 copy of a Matrix.
type workTable struct {
	n    int
	data []float64 // len == n*n, row-major
}

// newWorkTable converts every element of m to float64.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func newWorkTable[T Number](m *Matrix[T]) *workTable {
	w := &workTable{n: m.n, data: make([]float64, m.n*m.n)}
	for i, row := range m.rows {
		base := i * m.n
		for j, v := range row {
			w.data[base+j] = float64(v)
		}
	}

	return w
}

// row returns physical row i as a window over the buffer.
func (w *workTable) row(i int) []float64 {
	return w.data[i*w.n : (i+1)*w.n : (i+1)*w.n]
}
