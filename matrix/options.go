// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for determinant computations.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - No state on the Matrix: every call resolves its own Options value.
//   - Worker counts are clamped, never rejected.
package matrix

import (
	"code.cloudfoundry.org/clock"
	"github.com/katalvlaran/lvdet/metrics"
	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultThreads is the worker count when none is given.
	DefaultThreads = 1

	// DefaultMethod is the algorithm when none is given.
	DefaultMethod = LU

	// DefaultEpsilon is the LU pivot tolerance: a later candidate replaces the
	// current pivot only when its magnitude is larger by more than eps.
	DefaultEpsilon = 1e-8
)

// Option mutates internal options. Safe to apply repeatedly (last one wins).
type Option func(*Options)

// Options stores the effective configuration of one determinant call.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	threads int
	method  Method
	eps     float64

	logger  *zap.Logger
	metrics *metrics.DeterminantMetrics
	clock   clock.Clock
}

// WithThreads sets the number of workers. Values below 1 are clamped to 1 when
// the options are resolved.
func WithThreads(k int) Option {
	return func(o *Options) { o.threads = k }
}

// WithMethod selects the algorithm.
func WithMethod(m Method) Option {
	return func(o *Options) { o.method = m }
}

// WithEpsilon sets the LU pivot tolerance.
// Panics when eps is negative, NaN or infinite (programmer error).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithLogger routes engine debug logs to l. A nil logger keeps the no-op
// default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records every computation in m. Nil disables recording.
func WithMetrics(m *metrics.DeterminantMetrics) Option {
	return func(o *Options) { o.metrics = m }
}

// WithClock sets the clock used to time computations for metrics.
func WithClock(c clock.Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.clock = c
		}
	}
}

// gatherOptions applies user options over the defaults and clamps the worker
// count.
//
// Complexity:
//   - Time O(len(user)), Space O(1).
func gatherOptions(user ...Option) Options {
	o := Options{
		threads: DefaultThreads,
		method:  DefaultMethod,
		eps:     DefaultEpsilon,
		logger:  zap.NewNop(),
		clock:   clock.NewClock(),
	}
	for _, set := range user {
		set(&o)
	}
	o.threads = max(o.threads, 1)

	return o
}

// Threads returns the resolved worker count.
func (o Options) Threads() int { return o.threads }

// Method returns the resolved algorithm.
func (o Options) Method() Method { return o.method }

// Epsilon returns the resolved pivot tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Resolve returns the effective Options for opts, as a determinant call would
// see them.
func Resolve(opts ...Option) Options { return gatherOptions(opts...) }
