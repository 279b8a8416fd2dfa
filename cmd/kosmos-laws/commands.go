// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kosmos/config"
	"github.com/katalvlaran/kosmos/instances"
	"github.com/katalvlaran/kosmos/runner"
	"github.com/katalvlaran/kosmos/suite"
)

// errNoSuites is returned when the selection matches nothing.
var errNoSuites = errors.New("no suite matches the selection")

// flags holds the command-line overrides of the configuration file.
type flags struct {
	configPath string
	full       bool
	suites     []string
	checks     int
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:          "kosmos-laws",
		Short:        "Check the algebraic laws of the built-in instances",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML run configuration")
	pf.BoolVar(&f.full, "full", false, "use the full law sets")
	pf.StringSliceVar(&f.suites, "suite", nil, "select suites by case-insensitive substring (repeatable)")

	root.AddCommand(newListCmd(&f), newRunCmd(&f))
	return root
}

func newListCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the catalog suites and their laws",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, suites, err := f.catalog(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range suites {
				laws := s.Laws()
				if cfg.Full {
					laws = s.FullLaws()
				}
				fmt.Fprintln(out, s.Name())
				for _, name := range suite.Names(laws) {
					fmt.Fprintln(out, "  "+name)
				}
			}
			return nil
		},
	}
}

func newRunCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the catalog suites and report failing laws",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, suites, err := f.catalog(cmd)
			if err != nil {
				return err
			}
			log := newLogger(cmd.ErrOrStderr(), cfg.Level())
			rep, err := runner.FromConfig(cfg, runner.WithLogger(log)).Run(cmd.Context(), suites...)
			fmt.Fprint(cmd.OutOrStdout(), rep.Summary())
			return err
		},
	}
	cmd.Flags().IntVar(&f.checks, "checks", config.DefaultChecks, "samples per law")
	return cmd
}

// catalog loads the configuration, applies the flags that were set and
// builds the selected suites.
func (f *flags) catalog(cmd *cobra.Command) (config.Config, []suite.LawSuite, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	set := cmd.Flags()
	if set.Changed("full") {
		cfg.Full = f.full
	}
	if set.Changed("suite") {
		cfg.Suites = f.suites
	}
	if set.Lookup("checks") != nil && set.Changed("checks") {
		cfg.Checks = f.checks
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	suites, err := instances.Catalog(cfg)
	if err != nil {
		return config.Config{}, nil, err
	}
	if len(suites) == 0 {
		return config.Config{}, nil, fmt.Errorf("%w: %q", errNoSuites, cfg.Suites)
	}
	return cfg, suites, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	_, file := w.(*os.File)
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    !file,
	}))
}
