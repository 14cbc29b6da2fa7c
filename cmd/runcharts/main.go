// seehuhn.de/go/chart - raster charts for run analytics
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command runcharts renders the analytics charts of a debate run.
//
// Usage:
//
//	runcharts render run.json     # one PNG per chart
//	runcharts export run.json     # xlsx workbook, or CSV of one series
//	runcharts summary run.json    # headline metrics and round log
//	runcharts config init         # write the default configuration
//
// A run file name of "-" reads the run from standard input.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/config"
	"seehuhn.de/go/chart/run"
)

// options holds the global flags.
type options struct {
	configPath string
	outDir     string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "runcharts",
		Short: "Render analytics charts of debate runs",
		Long: `runcharts draws the cost, consensus, token and provider charts
of a debate run and exports the derived series.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), opts.verbose)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Configuration file (default: built-in settings)")
	rootCmd.PersistentFlags().StringVarP(&opts.outDir, "out", "o", "", "Output directory (default: from configuration)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug messages to stderr")

	rootCmd.AddCommand(
		newRenderCmd(opts),
		newExportCmd(opts),
		newSummaryCmd(),
		newConfigCmd(opts),
	)
	return rootCmd
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	chart.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// load reads the configuration and applies the output directory flag.
func (o *options) load() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.outDir != "" {
		cfg.Output.Dir = o.outDir
	}
	return cfg, nil
}

// loadRun reads a run snapshot from a file, or from stdin if name is "-".
func loadRun(cmd *cobra.Command, name string) (*run.Snapshot, error) {
	var s *run.Snapshot
	var err error
	if name == "-" {
		s, err = run.Decode(cmd.InOrStdin())
	} else {
		if _, statErr := os.Stat(name); os.IsNotExist(statErr) {
			return nil, fmt.Errorf("file not found: %s", name)
		}
		s, err = run.Load(name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load run: %w", err)
	}
	return s, nil
}
