// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/lvdet/samples"
	"github.com/spf13/cobra"
)

// NewSamplesCommand creates the samples command.
func NewSamplesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "List the built-in sample matrices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSIZE\tEXPECTED")
			for _, c := range samples.Cases() {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", c.Name, c.Matrix.Size(), formatFloat(c.Expected))
			}
			return tw.Flush()
		},
	}
}
