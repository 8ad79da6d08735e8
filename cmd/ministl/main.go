// SPDX-License-Identifier: MIT

// Command ministl runs the container demos: vector growth and editing,
// N-dimensional arrays, and linked lists.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ministl/internal/config"
	"github.com/katalvlaran/ministl/internal/demo"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	configFile string
	logLevel   string
	logFormat  string
	logFile    string

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:          "ministl",
		Short:        "generic container demos",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.runner(out).All()
		},
	}
	rootCmd.SetOut(out)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "config file (.yaml, .yml or .toml)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", "", "log format (console or json)")
	pf.StringVar(&opts.logFile, "log-file", "", "log file; rotated, stderr when empty")

	var vectorCount int
	vectorCmd := &cobra.Command{
		Use:   "vector",
		Short: "reserve/push/shrink and insert/erase round trip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n := opts.cfg.Demo.VectorCount
			if cmd.Flags().Changed("count") {
				n = vectorCount
			}

			return opts.runner(out).Vector(n)
		},
	}
	vectorCmd.Flags().IntVar(&vectorCount, "count", config.DefaultVectorCount, "elements to push")

	ndarrayCmd := &cobra.Command{
		Use:   "ndarray",
		Short: "1-D, 2-D and 3-D array arithmetic and reductions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.runner(out).NDArray(opts.cfg.Demo.MatrixRows, opts.cfg.Demo.MatrixCols)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "singly and doubly linked list operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.runner(out).List()
		},
	}

	var growthCount int
	growthCmd := &cobra.Command{
		Use:   "growth",
		Short: "capacity transitions and relocations of repeated push-back",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n := opts.cfg.Demo.GrowthCount
			if cmd.Flags().Changed("count") {
				n = growthCount
			}
			_, err := opts.runner(out).Growth(n)

			return err
		},
	}
	growthCmd.Flags().IntVar(&growthCount, "count", config.DefaultGrowthCount, "elements to push")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := opts.cfg.YAML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, text)

			return err
		},
	}

	rootCmd.AddCommand(vectorCmd, ndarrayCmd, listCmd, growthCmd, configCmd)

	return rootCmd
}

// setup loads the config file, applies flag overrides and builds the logger.
func (o *options) setup(cmd *cobra.Command) error {
	cfg := config.DefaultConfig()
	if o.configFile != "" {
		loaded, err := config.Load(o.configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}
	if flags.Changed("log-file") {
		cfg.Log.Filename = o.logFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := cfg.Log.Build()
	if err != nil {
		return err
	}
	o.cfg, o.logger = cfg, logger
	o.logger.Debug("configuration loaded",
		zap.String("config", o.configFile),
		zap.String("level", cfg.Log.Level),
		zap.String("format", cfg.Log.Format))

	return nil
}

func (o *options) runner(out io.Writer) *demo.Runner {
	return demo.New(out, o.logger.Named("demo"), o.cfg.Demo)
}
