// SPDX-License-Identifier: MIT

// Package bench times repeated determinant computations over a grid of
// matrix sizes and worker counts.
package bench

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"text/tabwriter"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/katalvlaran/lvdet/matrix"
	"github.com/katalvlaran/lvdet/metrics"
	"github.com/katalvlaran/lvdet/samples"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Matrix kinds a Plan can generate.
const (
	KindRandom   = "random"
	KindTriangle = "triangle"
	KindHilbert  = "hilbert"
)

// MaxLaplaceSize bounds plans that use the factorial-cost method.
const MaxLaplaceSize = 11

// ErrInvalidPlan is returned by Plan.Validate and Runner.Run.
var ErrInvalidPlan = errors.New("bench: invalid plan")

// Plan describes one benchmark grid. Every size is run with 1..MaxThreads
// workers, Iterations times each.
type Plan struct {
	Method     matrix.Method
	Kind       string
	Sizes      []int
	MaxThreads int
	Iterations int
	Seed       int64
}

// Validate reports the first problem with p, wrapped around ErrInvalidPlan.
func (p Plan) Validate() error {
	switch {
	case len(p.Sizes) == 0:
		return errors.Wrap(ErrInvalidPlan, "no sizes")
	case p.Iterations < 1:
		return errors.Wrapf(ErrInvalidPlan, "iterations %d < 1", p.Iterations)
	case p.MaxThreads < 1:
		return errors.Wrapf(ErrInvalidPlan, "max threads %d < 1", p.MaxThreads)
	}
	switch p.Kind {
	case KindRandom, KindTriangle, KindHilbert:
	default:
		return errors.Wrapf(ErrInvalidPlan, "unknown kind %q", p.Kind)
	}
	for _, n := range p.Sizes {
		if n < 1 {
			return errors.Wrapf(ErrInvalidPlan, "size %d < 1", n)
		}
		if p.Method == matrix.Laplace && n > MaxLaplaceSize {
			return errors.Wrapf(ErrInvalidPlan, "size %d too large for %s (max %d)", n, p.Method, MaxLaplaceSize)
		}
	}
	return nil
}

// Result is the timing of one (size, threads) cell.
type Result struct {
	Size       int
	Threads    int
	Iterations int
	Total      time.Duration
	Mean       time.Duration
	// Speedup is the mean of the single-worker run divided by Mean.
	Speedup float64
	LastDet float64
}

// Runner executes plans.
type Runner struct {
	Clock   clock.Clock
	Logger  *zap.Logger
	Metrics *metrics.DeterminantMetrics
}

type determinant interface {
	Det(opts ...matrix.Option) float64
}

// Run executes p and returns one Result per size and worker count, ordered by
// size then threads. The context is checked between cells.
func (r *Runner) Run(ctx context.Context, p Plan) ([]Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	clk := r.Clock
	if clk == nil {
		clk = clock.NewClock()
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []Result
	for _, n := range p.Sizes {
		m := build(p.Kind, n, p.Seed)

		var single time.Duration
		for k := 1; k <= p.MaxThreads; k++ {
			if err := ctx.Err(); err != nil {
				return results, errors.Wrap(err, "bench interrupted")
			}

			res := Result{Size: n, Threads: k, Iterations: p.Iterations}
			for i := 0; i < p.Iterations; i++ {
				began := clk.Now()
				res.LastDet = m.Det(
					matrix.WithThreads(k),
					matrix.WithMethod(p.Method),
					matrix.WithLogger(logger),
					matrix.WithMetrics(r.Metrics),
				)
				res.Total += clk.Since(began)
			}
			res.Mean = res.Total / time.Duration(p.Iterations)
			if k == 1 {
				single = res.Mean
			}
			if res.Mean > 0 {
				res.Speedup = float64(single) / float64(res.Mean)
			}

			logger.Info("bench cell finished",
				zap.Stringer("method", p.Method),
				zap.String("kind", p.Kind),
				zap.Int("n", n),
				zap.Int("threads", k),
				zap.Duration("mean", res.Mean),
			)
			results = append(results, res)
		}
	}

	return results, nil
}

// build generates the matrix of a cell. Every size gets its own generator
// seeded with seed, so a plan is reproducible.
func build(kind string, n int, seed int64) determinant {
	rng := rand.New(rand.NewSource(seed))
	switch kind {
	case KindTriangle:
		return samples.Triangle(rng, n, int64(n))
	case KindHilbert:
		return samples.Hilbert(n)
	default:
		return samples.Random(rng, n)
	}
}

// WriteTable prints results as an aligned table.
func WriteTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SIZE\tTHREADS\tITERATIONS\tMEAN\tSPEEDUP\tDET")
	for _, res := range results {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%.2f\t%g\n",
			res.Size, res.Threads, res.Iterations, res.Mean, res.Speedup, res.LastDet)
	}
	return tw.Flush()
}
