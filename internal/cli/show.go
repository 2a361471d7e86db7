// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/lvdet/matrix"
	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	var sample string

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Print a matrix and its LU determinant",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readInput(args, sample)
			if err != nil {
				return err
			}

			det := m.Det(
				matrix.WithThreads(rootOpts.Config.Threads),
				matrix.WithEpsilon(rootOpts.Config.Epsilon),
				matrix.WithLogger(rootOpts.Logger),
			)
			fmt.Fprint(cmd.OutOrStdout(), m.String())
			fmt.Fprintf(cmd.OutOrStdout(), "det = %s\n", formatFloat(det))
			return nil
		},
	}

	cmd.Flags().StringVarP(&sample, "sample", "s", "", "built-in sample name (see 'lvdet samples')")

	return cmd
}
