// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/katalvlaran/lvdet/internal/config"
	"github.com/katalvlaran/lvdet/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// RootOptions holds global flags and the state every command resolves
// before it runs.
type RootOptions struct {
	ConfigFile string

	viper  *viper.Viper
	Config *config.Config
	Logger *zap.Logger
}

// NewRootCommand creates the root command for the lvdet CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{viper: config.New()}

	cmd := &cobra.Command{
		Use:   "lvdet",
		Short: "lvdet - concurrent matrix determinants",
		Long: `Compute determinants of square matrices with a configurable number of
workers, using partial-pivot LU elimination or permutation expansion.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	// Global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigFile, "config", "", "config file (yaml, json or toml)")
	flags.String("log-level", "info", "log level (debug|info|warn|error)")
	flags.String("log-format", logging.FormatConsole, "log format (console|json|logfmt)")
	opts.bind(config.KeyLogLevel, flags.Lookup("log-level"))
	opts.bind(config.KeyLogFormat, flags.Lookup("log-format"))

	// Add subcommands
	cmd.AddCommand(NewDetCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewSamplesCommand(opts))
	cmd.AddCommand(NewBenchCommand(opts))

	return cmd
}

// resolve loads the configuration and builds the logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	if o.ConfigFile != "" {
		if err := config.ReadFile(o.viper, o.ConfigFile); err != nil {
			return err
		}
	}

	c, err := config.Load(o.viper)
	if err != nil {
		return err
	}
	o.Config = c

	logger, err := logging.New(logging.Config{
		Level:  c.Log.Level,
		Format: c.Log.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	o.Logger = logger

	return nil
}

// bind ties a config key to a flag; a flag set on the command line wins over
// the file and the environment.
func (o *RootOptions) bind(key string, flag *pflag.Flag) {
	if err := o.viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
