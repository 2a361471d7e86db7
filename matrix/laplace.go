// SPDX-License-Identifier: MIT

package matrix

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// laplace computes the determinant by permutation expansion.
//
// Implementation:
//   - Stage 1: partition the first-row columns [0, n) among min(threads, n)
//     workers; extra workers would only get empty ranges.
//   - Stage 2: start one goroutine per non-empty range except worker 0, whose
//     range is expanded on the calling goroutine.
//   - Stage 3: join, then add the partial sums in worker order.
//
// Behavior highlights:
//   - Workers share only the read-only source rows; each owns its mask.
//   - The sign of a first-row choice depends on the parity of its column, so
//     every split of [0, n) yields the same terms as a single worker.
//
// Complexity:
//   - Time O(n·n!) total, Space O(n) per worker.
func laplace[T Number](m *Matrix[T], o *Options) float64 {
	n := m.n
	if n == 0 {
		return 0
	}

	workers := min(o.threads, n)
	part := NewPartition(0, n, workers)
	partials := make([]extended, workers)

	var g errgroup.Group
	spawned := 0
	for w := 1; w < workers; w++ {
		start, end := part.Range(w)
		if start == end {
			continue
		}
		spawned++
		g.Go(func() error {
			partials[w] = newExpansion(m.rows).expand(start, end-start, 0)
			return nil
		})
	}

	start, end := part.Range(0)
	partials[0] = newExpansion(m.rows).expand(start, end-start, 0)
	_ = g.Wait() // workers never fail

	var det extended
	for _, p := range partials {
		det = det.add(p)
	}

	o.logger.Debug("laplace expansion finished",
		zap.Int("n", n),
		zap.Int("threads", workers),
		zap.Int("spawned", spawned),
		zap.Float64("det", det.value()),
	)

	return det.value()
}

// expansion is the state of one worker: the read-only source rows and the
// worker's own exploration mask.
type expansion[T Number] struct {
	rows [][]T
	used []bool
}

func newExpansion[T Number](rows [][]T) *expansion[T] {
	return &expansion[T]{rows: rows, used: make([]bool, len(rows))}
}

// expand sums the signed products of every permutation that picks, for row,
// an unused column in [start, start+count), and any unused columns below.
// The sign flips with the position among the unused candidates, starting
// positive on even start columns.
func (e *expansion[T]) expand(start, count, row int) extended {
	n := len(e.used)
	end := start + count

	// unreachable with a valid partition
	if row >= n || end > n {
		return extended{}
	}

	if row == n-1 {
		for i := start; i < end; i++ {
			if !e.used[i] {
				return extended{hi: float64(e.rows[row][i])}
			}
		}
		return extended{}
	}

	var det extended
	sign := 1 - 2*(start&1)
	for i := start; i < end; i++ {
		if e.used[i] {
			continue
		}
		e.used[i] = true
		minor := e.expand(0, n, row+1)
		det = det.add(minor.scale(float64(sign) * float64(e.rows[row][i])))
		e.used[i] = false
		sign = -sign
	}

	return det
}
