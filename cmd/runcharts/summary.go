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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"seehuhn.de/go/chart/run"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <run.json>",
		Short: "Print the headline metrics and the round log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadRun(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			sum := run.Summarize(s)

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, m := range sum.Metrics() {
				fmt.Fprintf(tw, "%s\t%s\n", m.Label, m.Value)
			}
			fmt.Fprintf(tw, "Rounds\t%d / %d\n", sum.RoundsCompleted, sum.RoundsRequested)
			fmt.Fprintf(tw, "Stopped\t%s\n", sum.StoppedReason)
			if err := tw.Flush(); err != nil {
				return err
			}

			if len(s.Rounds) > 0 {
				fmt.Fprintln(out)
			}
			for _, rd := range s.Rounds {
				fmt.Fprintln(out, run.RoundLine(rd))
			}
			fmt.Fprintln(out, run.TotalLine(s))
			return nil
		},
	}
}
