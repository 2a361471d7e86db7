// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/lvdet/barrier"
	"go.uber.org/zap"
	"gopkg.in/tomb.v2"
)

// luRun is the state shared by the workers of one LU call.
//
// Ownership:
//   - swap, det and part are written only by worker 0 during Phase A.
//   - Column k of the rows below the pivot is scaled by worker 0 in Phase A.
//   - In Phase B each worker writes only the rows of its own range; the pivot
//     row is read-only.
//   - The two barriers order Phase A before Phase B and step k before k+1.
type luRun struct {
	n       int
	threads int
	eps     float64

	work *workTable
	swap []int // logical row -> physical row
	det  float64
	part Partition

	pivoted *barrier.Barrier // Phase A done
	reduced *barrier.Barrier // Phase B done
}

// luDeterminant computes the determinant by partial-pivot elimination on a
// float64 copy of m.
//
// Implementation:
//   - Stage 1: copy m into a work table; identity permutation; det = 1.
//   - Stage 2: start min(threads, n-1) workers (at least 1); each walks the
//     n pivot steps.
//   - Stage 3: wait for all of them; a NaN product is reported as 0.
//
// Behavior highlights:
//   - m is never mutated.
//   - Rows move only through the permutation vector.
//   - Workers beyond the remaining row count get empty ranges but still meet
//     at every barrier.
//
// Complexity:
//   - Time O(n³/threads + n·threads), Space O(n²).
func luDeterminant[T Number](m *Matrix[T], o *Options) float64 {
	n := m.n
	if n == 0 {
		return 0
	}

	// at most n-1 rows are eliminated per step; more workers would stay idle
	threads := max(1, min(o.threads, n-1))
	r := &luRun{
		n:       n,
		threads: threads,
		eps:     o.eps,
		work:    newWorkTable(m),
		swap:    make([]int, n),
		det:     1,
		pivoted: barrier.New(threads),
		reduced: barrier.New(threads),
	}
	for i := range r.swap {
		r.swap[i] = i
	}

	// Workers park at the first barrier until all of them are started, so the
	// tomb cannot die before the last t.Go call.
	var t tomb.Tomb
	for w := 0; w < r.threads; w++ {
		t.Go(func() error {
			r.worker(w)
			return nil
		})
	}
	_ = t.Wait() // workers never fail

	det := r.det
	if math.IsNaN(det) {
		o.logger.Debug("lu determinant is NaN, reporting 0", zap.Int("n", n))
		if o.metrics != nil {
			o.metrics.NaNCoerced.Add(1)
		}
		det = 0
	}

	o.logger.Debug("lu elimination finished",
		zap.Int("n", n),
		zap.Int("threads", r.threads),
		zap.Float64("det", det),
	)

	return det
}

// worker runs every pivot step for worker id.
func (r *luRun) worker(id int) {
	for k := 0; k < r.n; k++ {
		if id == 0 {
			r.selectPivot(k)
		}
		r.pivoted.Wait()

		part := r.part
		start, end := part.Range(id)
		r.eliminate(k, start, end)

		r.reduced.Wait()
	}
}

// selectPivot is Phase A of step k (worker 0 only).
//
// Implementation:
//   - Stage 1: argmax of |a[i][k]| over the remaining logical rows; a later
//     row wins only when it beats the best by more than eps.
//   - Stage 2: swap the permutation entries of k and the winner.
//   - Stage 3: divide column k of every remaining row by the pivot.
//   - Stage 4: det *= pivot, negated when a swap happened.
//   - Stage 5: publish the partition of the n-k-1 rows below the pivot.
func (r *luRun) selectPivot(k int) {
	p := k
	for i := k + 1; i < r.n; i++ {
		if math.Abs(r.work.row(r.swap[i])[k])-math.Abs(r.work.row(r.swap[p])[k]) > r.eps {
			p = i
		}
	}
	r.swap[k], r.swap[p] = r.swap[p], r.swap[k]

	pivot := r.work.row(r.swap[k])[k]
	for i := k + 1; i < r.n; i++ {
		r.work.row(r.swap[i])[k] /= pivot
	}

	sign := -1.0
	if k == p {
		sign = 1
	}
	r.det *= pivot * sign

	r.part = NewPartition(k+1, r.n-k-1, r.threads)
}

// eliminate is Phase B of step k over logical rows [start, end).
func (r *luRun) eliminate(k, start, end int) {
	pivotRow := r.work.row(r.swap[k])
	for i := start; i < end; i++ {
		row := r.work.row(r.swap[i])
		x := row[k]
		for j := k + 1; j < r.n; j++ {
			// explicit conversion keeps the product rounded on every platform
			row[j] -= float64(x * pivotRow[j])
		}
	}
}
