// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvdet/internal/bench"
	"github.com/katalvlaran/lvdet/internal/config"
	"github.com/katalvlaran/lvdet/matrix"
	"github.com/katalvlaran/lvdet/metrics"
	"github.com/katalvlaran/lvdet/metrics/prometheus"
	"github.com/pkg/errors"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const methodBoth = "both"

// DetOptions holds the flags of the det command.
type DetOptions struct {
	Sample     string
	Method     string
	MetricsOut string
}

// NewDetCommand creates the det command.
func NewDetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DetOptions{}

	cmd := &cobra.Command{
		Use:   "det [file]",
		Short: "Compute the determinant of a matrix",
		Long: `Compute the determinant of the matrix stored in file (yaml, json or toml)
or of a built-in sample.

With --method both, the LU and permutation-expansion results are printed
together with their difference. --metrics-out writes the collected
prometheus metrics in text format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDet(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Sample, "sample", "s", "", "built-in sample name (see 'lvdet samples')")
	cmd.Flags().StringVarP(&opts.Method, "method", "m", "", "lu, laplace or both (default from config)")
	cmd.Flags().StringVar(&opts.MetricsOut, "metrics-out", "", "write prometheus metrics to this file")
	cmd.Flags().IntP("threads", "t", 1, "number of workers")
	cmd.Flags().Float64("epsilon", matrix.DefaultEpsilon, "LU pivot tolerance")
	rootOpts.bind(config.KeyThreads, cmd.Flags().Lookup("threads"))
	rootOpts.bind(config.KeyEpsilon, cmd.Flags().Lookup("epsilon"))

	return cmd
}

func runDet(rootOpts *RootOptions, opts *DetOptions, args []string, cmd *cobra.Command) error {
	m, err := readInput(args, opts.Sample)
	if err != nil {
		return err
	}

	methods, err := detMethods(opts.Method, rootOpts.Config.Method)
	if err != nil {
		return err
	}

	var dm *metrics.DeterminantMetrics
	registry := prom.NewRegistry()
	if opts.MetricsOut != "" {
		dm = metrics.NewDeterminantMetrics(&prometheus.Provider{Registerer: registry})
	}

	out := cmd.OutOrStdout()
	results := make([]float64, len(methods))
	for i, method := range methods {
		if method == matrix.Laplace && m.Size() > bench.MaxLaplaceSize {
			rootOpts.Logger.Warn("permutation expansion grows as n!, expect a long run", zap.Int("n", m.Size()))
		}
		results[i] = m.Det(
			matrix.WithThreads(rootOpts.Config.Threads),
			matrix.WithMethod(method),
			matrix.WithEpsilon(rootOpts.Config.Epsilon),
			matrix.WithLogger(rootOpts.Logger),
			matrix.WithMetrics(dm),
		)
		fmt.Fprintf(out, "det(%s) = %s\n", method, formatFloat(results[i]))
	}
	if len(results) == 2 {
		fmt.Fprintf(out, "difference = %s\n", formatFloat(math.Abs(results[0]-results[1])))
	}

	if opts.MetricsOut != "" {
		if err := prom.WriteToTextfile(opts.MetricsOut, registry); err != nil {
			return errors.Wrapf(err, "writing metrics to %s", opts.MetricsOut)
		}
		rootOpts.Logger.Info("metrics written", zap.String("path", opts.MetricsOut))
	}

	return nil
}

// detMethods maps the --method flag to the methods to run. An empty flag
// falls back to the configured method.
func detMethods(flag string, configured matrix.Method) ([]matrix.Method, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "":
		return []matrix.Method{configured}, nil
	case methodBoth:
		return []matrix.Method{matrix.LU, matrix.Laplace}, nil
	default:
		method, err := matrix.ParseMethod(flag)
		if err != nil {
			return nil, err
		}
		return []matrix.Method{method}, nil
	}
}
