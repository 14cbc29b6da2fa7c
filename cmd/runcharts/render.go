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

	"github.com/spf13/cobra"

	"seehuhn.de/go/chart/dashboard"
)

func newRenderCmd(opts *options) *cobra.Command {
	var parallel bool

	cmd := &cobra.Command{
		Use:   "render <run.json>",
		Short: "Render one PNG file per chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			s, err := loadRun(cmd, args[0])
			if err != nil {
				return err
			}

			d := dashboard.New(cfg)
			d.Parallel = parallel
			rep := d.Render(s)

			paths, err := d.WritePNGs(cfg.Output.Dir, rep)
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			if err != nil {
				return fmt.Errorf("failed to write charts: %w", err)
			}
			return rep.Err()
		},
	}

	cmd.Flags().BoolVar(&parallel, "parallel", false, "Render the charts concurrently")
	return cmd
}
