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

// Command export renders all chart test cases to PNG files for visual
// review. Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/export"
	"seehuhn.de/go/chart/testcases"
)

const outDir = "testdata/charts"

func main() {
	n := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			s := tc.Surface(name)
			r := chart.NewRenderer(chart.NewPage(s))
			if !tc.Draw(r, name) {
				fmt.Fprintf(os.Stderr, "%s: skipped\n", name)
				continue
			}

			path := filepath.Join(outDir, name+".png")
			if err := export.WritePNGFile(path, s.Image()); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			n++
		}
	}
	fmt.Printf("wrote %d charts to %s\n", n, outDir)
}
