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

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"seehuhn.de/go/chart/dashboard"
	"seehuhn.de/go/chart/export"
)

func newExportCmd(opts *options) *cobra.Command {
	var (
		workbook  string
		pictures  bool
		series    string
		tsv       bool
		precision int
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "export <run.json>",
		Short: "Export the derived series to a workbook or as CSV",
		Long: `Without --csv, export writes an xlsx workbook with a summary sheet,
one sheet per series and the rendered charts. With --csv, the named
series (cost, consensus, tokens or providers) is written to stdout.
With --json, the decoded run snapshot is written to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			s, err := loadRun(cmd, args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return export.WriteJSON(cmd.OutOrStdout(), s)
			}

			d := dashboard.New(cfg)
			rep := d.Render(s)

			if series != "" {
				t, err := export.TableByName(rep.Series, series)
				if err != nil {
					return err
				}
				csvCfg := export.DefaultCSVConfig()
				csvCfg.Precision = precision
				if tsv {
					csvCfg.Dialect = export.DialectTSV
				}
				return export.WriteCSV(cmd.OutOrStdout(), t, csvCfg)
			}

			path := workbook
			if path == "" {
				path = filepath.Join(cfg.Output.Dir, cfg.Output.Workbook)
			}
			if err := d.Workbook(rep, pictures).Save(path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return rep.Err()
		},
	}

	cmd.Flags().StringVarP(&workbook, "workbook", "w", "", "Workbook path (default: from configuration)")
	cmd.Flags().BoolVar(&pictures, "pictures", true, "Include the rendered charts in the workbook")
	cmd.Flags().StringVar(&series, "csv", "", "Write the named series as CSV to stdout")
	cmd.Flags().BoolVar(&tsv, "tsv", false, "Use tabs instead of commas for CSV output")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Write the decoded run snapshot as JSON to stdout")
	cmd.Flags().IntVar(&precision, "precision", 6, "Decimal places of CSV values (-1 for shortest)")
	cmd.MarkFlagsMutuallyExclusive("json", "csv")
	return cmd
}
