// SPDX-License-Identifier: MIT

package metrics

const (
	namespace = "lvdet"
	subsystem = "determinant"

	// MethodLabel is the label carrying the determinant method name.
	MethodLabel = "method"
)

var (
	computationsOpts = CounterOpts{
		Namespace:  namespace,
		Subsystem:  subsystem,
		Name:       "computations_total",
		Help:       "The number of determinant computations performed.",
		LabelNames: []string{MethodLabel},
	}
	durationOpts = HistogramOpts{
		Namespace:  namespace,
		Subsystem:  subsystem,
		Name:       "duration_seconds",
		Help:       "The time spent computing a determinant.",
		LabelNames: []string{MethodLabel},
		Buckets:    []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10, 60},
	}
	workersOpts = GaugeOpts{
		Namespace:  namespace,
		Subsystem:  subsystem,
		Name:       "workers",
		Help:       "The number of workers used by the most recent computation.",
		LabelNames: []string{MethodLabel},
	}
	nanCoercedOpts = CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "nan_coerced_total",
		Help:      "The number of LU results that were NaN and reported as zero.",
	}
)

// DeterminantMetrics groups the instruments updated by every determinant
// computation.
type DeterminantMetrics struct {
	Computations Counter
	Duration     Histogram
	Workers      Gauge
	NaNCoerced   Counter
}

// NewDeterminantMetrics creates the determinant instruments from p.
func NewDeterminantMetrics(p Provider) *DeterminantMetrics {
	return &DeterminantMetrics{
		Computations: p.NewCounter(computationsOpts),
		Duration:     p.NewHistogram(durationOpts),
		Workers:      p.NewGauge(workersOpts),
		NaNCoerced:   p.NewCounter(nanCoercedOpts),
	}
}
