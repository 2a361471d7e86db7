// SPDX-License-Identifier: MIT

package cli

import (
	"code.cloudfoundry.org/clock"
	"github.com/katalvlaran/lvdet/internal/bench"
	"github.com/katalvlaran/lvdet/internal/config"
	"github.com/katalvlaran/lvdet/matrix"
	"github.com/katalvlaran/lvdet/metrics"
	"github.com/katalvlaran/lvdet/metrics/disabled"
	"github.com/katalvlaran/lvdet/metrics/prometheus"
	"github.com/pkg/errors"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// BenchOptions holds the flags of the bench command that are not config keys.
type BenchOptions struct {
	Method     string
	MetricsOut string
}

// NewBenchCommand creates the bench command.
func NewBenchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BenchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time determinant computations across sizes and worker counts",
		Long: `Generate matrices of each size, compute their determinants with 1 to
--max-threads workers and print the mean duration of each cell.

--metrics-out writes the collected prometheus metrics in text format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(rootOpts, opts, cmd)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Method, "method", "m", "", "lu or laplace (default from config)")
	flags.StringVar(&opts.MetricsOut, "metrics-out", "", "write prometheus metrics to this file")
	flags.IntSlice("sizes", []int{2, 4, 8}, "matrix sizes")
	flags.Int("max-threads", 4, "largest worker count")
	flags.IntP("iterations", "n", 10, "computations per cell")
	flags.Int64("seed", 1, "seed of the random generators")
	flags.String("kind", bench.KindRandom, "matrix kind (random|triangle|hilbert)")
	rootOpts.bind(config.KeyBenchSizes, flags.Lookup("sizes"))
	rootOpts.bind(config.KeyBenchMaxThreads, flags.Lookup("max-threads"))
	rootOpts.bind(config.KeyBenchIterations, flags.Lookup("iterations"))
	rootOpts.bind(config.KeyBenchSeed, flags.Lookup("seed"))
	rootOpts.bind(config.KeyBenchKind, flags.Lookup("kind"))

	return cmd
}

func runBench(rootOpts *RootOptions, opts *BenchOptions, cmd *cobra.Command) error {
	c := rootOpts.Config
	method := c.Method
	if opts.Method != "" {
		m, err := matrix.ParseMethod(opts.Method)
		if err != nil {
			return err
		}
		method = m
	}

	var provider metrics.Provider = &disabled.Provider{}
	registry := prom.NewRegistry()
	if opts.MetricsOut != "" {
		provider = &prometheus.Provider{Registerer: registry}
	}

	runner := &bench.Runner{
		Clock:   clock.NewClock(),
		Logger:  rootOpts.Logger,
		Metrics: metrics.NewDeterminantMetrics(provider),
	}
	results, err := runner.Run(cmd.Context(), bench.Plan{
		Method:     method,
		Kind:       c.Bench.Kind,
		Sizes:      c.Bench.Sizes,
		MaxThreads: c.Bench.MaxThreads,
		Iterations: c.Bench.Iterations,
		Seed:       c.Bench.Seed,
	})
	if err != nil {
		return err
	}

	if err := bench.WriteTable(cmd.OutOrStdout(), results); err != nil {
		return errors.Wrap(err, "writing results")
	}

	if opts.MetricsOut != "" {
		if err := prom.WriteToTextfile(opts.MetricsOut, registry); err != nil {
			return errors.Wrapf(err, "writing metrics to %s", opts.MetricsOut)
		}
		rootOpts.Logger.Info("metrics written", zap.String("path", opts.MetricsOut))
	}

	return nil
}
