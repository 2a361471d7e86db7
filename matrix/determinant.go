// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvdet/metrics"
	"go.uber.org/zap"
)

// Determinant computes the determinant of m with the given number of workers
// and method. threads < 1 is clamped to 1; the 0×0 matrix yields 0.
//
// Example:
//
//	det := m.Determinant(4, matrix.LU)
func (m *Matrix[T]) Determinant(threads int, method Method) float64 {
	return m.Det(WithThreads(threads), WithMethod(method))
}

// DeterminantLU is Determinant with the LU method.
func (m *Matrix[T]) DeterminantLU(threads int) float64 {
	return m.Det(WithThreads(threads), WithMethod(LU))
}

// DeterminantLaplace is Determinant with the permutation-expansion method.
// Its cost grows as n!; keep n small.
func (m *Matrix[T]) DeterminantLaplace(threads int) float64 {
	return m.Det(WithThreads(threads), WithMethod(Laplace))
}

// Det computes the determinant of m as configured by opts.
//
// Implementation:
//   - Stage 1: resolve options (defaults: 1 worker, LU, eps 1e-8).
//   - Stage 2: n == 0 (or a nil receiver) returns 0 without starting workers.
//   - Stage 3: dispatch to the LU or Laplace engine.
//   - Stage 4: record metrics and a debug log line.
//
// Behavior highlights:
//   - m is never mutated; concurrent calls on the same m are safe.
//   - Never returns NaN for the LU method.
func (m *Matrix[T]) Det(opts ...Option) float64 {
	o := gatherOptions(opts...)
	if m.Size() == 0 {
		return 0
	}

	started := o.clock.Now()
	var det float64
	switch o.method {
	case Laplace:
		det = laplace(m, &o)
	default:
		det = luDeterminant(m, &o)
	}
	elapsed := o.clock.Since(started)

	if o.metrics != nil {
		method := o.method.String()
		o.metrics.Computations.With(metrics.MethodLabel, method).Add(1)
		o.metrics.Duration.With(metrics.MethodLabel, method).Observe(elapsed.Seconds())
		o.metrics.Workers.With(metrics.MethodLabel, method).Set(float64(o.threads))
	}
	o.logger.Debug("determinant computed",
		zap.Stringer("method", o.method),
		zap.Int("n", m.n),
		zap.Int("threads", o.threads),
		zap.Duration("elapsed", elapsed),
		zap.Float64("det", det),
	)

	return det
}
