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

package chart

import "seehuhn.de/go/geom/vec"

// gridLineCount is the number of horizontal grid lines, including the top
// and bottom edge of the plot.
const gridLineCount = 5

// axisLabelGap is the distance between value labels and the plot.
const axisLabelGap = 6

// GridLine is one horizontal grid line with its value label.
type GridLine struct {
	Y     float64
	Value float64
	Label string
}

// GridLines returns evenly spaced grid lines from the top of plot (rng.Max)
// to the bottom (rng.Min).
func GridLines(rng Range, plot Rect) []GridLine {
	lines := make([]GridLine, gridLineCount)
	for i := range lines {
		f := float64(i) / (gridLineCount - 1)
		v := rng.Min + (rng.Max-rng.Min)*(1-f)
		lines[i] = GridLine{
			Y:     plot.Top + plot.Height*f,
			Value: v,
			Label: FormatAxis(v, rng.Max),
		}
	}
	return lines
}

func (r *Renderer) drawGrid(c *Canvas, lines []GridLine, plot Rect) {
	th := &r.Theme
	for _, gl := range lines {
		c.SetRole("grid")
		c.Stroke(PolylinePath([]vec.Vec2{
			{X: plot.Left, Y: gl.Y},
			{X: plot.Right(), Y: gl.Y},
		}), StrokeStyle{Color: th.Grid, Width: 1})

		c.SetRole("axis")
		c.Text(gl.Label, plot.Left-axisLabelGap, gl.Y+3, TextStyle{
			Size:  th.AxisFontSize,
			Color: th.AxisText,
			Align: AlignRight,
		})
	}
}
