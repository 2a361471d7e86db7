// SPDX-License-Identifier: MIT

package bench_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/katalvlaran/lvdet/internal/bench"
	"github.com/katalvlaran/lvdet/matrix"
	"github.com/katalvlaran/lvdet/metrics"
	"github.com/katalvlaran/lvdet/metrics/prometheus"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// steppingClock advances by step every time Now is read, so each timed
// section lasts exactly step.
type steppingClock struct {
	*fakeclock.FakeClock
	step time.Duration
}

func (c steppingClock) Now() time.Time {
	now := c.FakeClock.Now()
	c.FakeClock.Increment(c.step)
	return now
}

func newClock(step time.Duration) steppingClock {
	return steppingClock{FakeClock: fakeclock.NewFakeClock(time.Unix(0, 0)), step: step}
}

func TestPlan_Validate(t *testing.T) {
	ok := bench.Plan{Method: matrix.LU, Kind: bench.KindRandom, Sizes: []int{2}, MaxThreads: 1, Iterations: 1}
	require.NoError(t, ok.Validate())

	bad := []bench.Plan{
		{Kind: bench.KindRandom, MaxThreads: 1, Iterations: 1},
		{Kind: bench.KindRandom, Sizes: []int{2}, MaxThreads: 1},
		{Kind: bench.KindRandom, Sizes: []int{2}, Iterations: 1},
		{Kind: "sparse", Sizes: []int{2}, MaxThreads: 1, Iterations: 1},
		{Kind: bench.KindRandom, Sizes: []int{0}, MaxThreads: 1, Iterations: 1},
		{Method: matrix.Laplace, Kind: bench.KindRandom, Sizes: []int{4, 12}, MaxThreads: 1, Iterations: 1},
	}
	for i, p := range bad {
		require.ErrorIs(t, p.Validate(), bench.ErrInvalidPlan, "plan %d", i)
	}

	lu := bench.Plan{Method: matrix.LU, Kind: bench.KindHilbert, Sizes: []int{12}, MaxThreads: 1, Iterations: 1}
	require.NoError(t, lu.Validate())
}

func TestRunner_Run(t *testing.T) {
	reg := prom.NewRegistry()
	r := &bench.Runner{
		Clock:   newClock(time.Millisecond),
		Metrics: metrics.NewDeterminantMetrics(&prometheus.Provider{Registerer: reg}),
	}
	plan := bench.Plan{
		Method:     matrix.LU,
		Kind:       bench.KindTriangle,
		Sizes:      []int{2, 4},
		MaxThreads: 3,
		Iterations: 5,
		Seed:       7,
	}

	results, err := r.Run(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, results, 6)

	for i, res := range results {
		require.Equal(t, plan.Sizes[i/3], res.Size)
		require.Equal(t, i%3+1, res.Threads)
		require.Equal(t, 5, res.Iterations)
		require.Equal(t, 5*time.Millisecond, res.Total)
		require.Equal(t, time.Millisecond, res.Mean)
		require.Equal(t, 1.0, res.Speedup)
	}
	// triangle of size n with n on the diagonal
	require.Equal(t, 4.0, results[0].LastDet)
	require.Equal(t, 256.0, results[5].LastDet)

	require.Equal(t, 30.0, counterTotal(t, reg, "lvdet_determinant_computations_total"))
}

func counterTotal(t *testing.T, g prom.Gatherer, name string) float64 {
	t.Helper()

	families, err := g.Gather()
	require.NoError(t, err)
	total := 0.0
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

func TestRunner_Run_Laplace(t *testing.T) {
	r := &bench.Runner{Clock: newClock(time.Microsecond)}
	results, err := r.Run(context.Background(), bench.Plan{
		Method:     matrix.Laplace,
		Kind:       bench.KindHilbert,
		Sizes:      []int{3},
		MaxThreads: 2,
		Iterations: 1,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.InDelta(t, 1.0/2160, results[0].LastDet, 1e-15)
	require.Equal(t, results[0].LastDet, results[1].LastDet)
}

func TestRunner_Run_Invalid(t *testing.T) {
	r := &bench.Runner{}
	_, err := r.Run(context.Background(), bench.Plan{})
	require.ErrorIs(t, err, bench.ErrInvalidPlan)
}

func TestRunner_Run_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &bench.Runner{}
	results, err := r.Run(ctx, bench.Plan{Kind: bench.KindRandom, Sizes: []int{2}, MaxThreads: 1, Iterations: 1})
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, results)
}

func TestWriteTable(t *testing.T) {
	buf := &bytes.Buffer{}
	err := bench.WriteTable(buf, []bench.Result{
		{Size: 2, Threads: 1, Iterations: 3, Mean: time.Millisecond, Speedup: 1, LastDet: -2},
		{Size: 2, Threads: 2, Iterations: 3, Mean: 500 * time.Microsecond, Speedup: 2, LastDet: -2},
	})
	require.NoError(t, err)
	require.Equal(t,
		"SIZE  THREADS  ITERATIONS  MEAN   SPEEDUP  DET\n"+
			"2     1        3           1ms    1.00     -2\n"+
			"2     2        3           500µs  2.00     -2\n",
		buf.String())
}
