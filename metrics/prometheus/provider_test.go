// SPDX-License-Identifier: MIT

package prometheus_test

import (
	"testing"

	"github.com/katalvlaran/lvdet/metrics"
	lvprom "github.com/katalvlaran/lvdet/metrics/prometheus"
	prom "github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestProvider_DeterminantMetrics(t *testing.T) {
	t.Parallel()

	reg := prom.NewRegistry()
	m := metrics.NewDeterminantMetrics(&lvprom.Provider{Registerer: reg})

	m.Computations.With(metrics.MethodLabel, "lu").Add(1)
	m.Computations.With(metrics.MethodLabel, "lu").Add(2)
	m.Computations.With(metrics.MethodLabel, "laplace").Add(1)
	m.Workers.With(metrics.MethodLabel, "lu").Set(4)
	m.Duration.With(metrics.MethodLabel, "lu").Observe(0.5)
	m.NaNCoerced.Add(1)

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := map[string]float64{}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			if !hasLabel(metric.GetLabel(), "lu") {
				continue
			}
			switch {
			case metric.GetCounter() != nil:
				byName[mf.GetName()] = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				byName[mf.GetName()] = metric.GetGauge().GetValue()
			case metric.GetHistogram() != nil:
				byName[mf.GetName()] = float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}

	require.Equal(t, 3.0, byName["lvdet_determinant_computations_total"])
	require.Equal(t, 4.0, byName["lvdet_determinant_workers"])
	require.Equal(t, 1.0, byName["lvdet_determinant_duration_seconds"])
	require.Equal(t, 1.0, byName["lvdet_determinant_nan_coerced_total"])
}

// hasLabel reports whether the method label, when present, equals method.
func hasLabel(labels []*dto.LabelPair, method string) bool {
	for _, lp := range labels {
		if lp.GetName() == metrics.MethodLabel && lp.GetValue() != method {
			return false
		}
	}
	return true
}

func TestProvider_DuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	p := &lvprom.Provider{Registerer: prom.NewRegistry()}
	opts := metrics.CounterOpts{Namespace: "lvdet", Name: "dup_total", Help: "dup"}
	p.NewCounter(opts)
	require.Panics(t, func() { p.NewCounter(opts) })
}
