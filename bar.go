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

import (
	"image/color"

	"seehuhn.de/go/geom/vec"
)

const (
	barRadius      = 4
	barBottomAlpha = 0x60

	// maxBarLabel is the number of characters shown below a bar.
	maxBarLabel = 10
)

// Bar is the geometry of one bar in a bar chart.
type Bar struct {
	X, Y          float64 // top left corner
	Width, Height float64
	Color         color.NRGBA
	Label         string // truncated
}

// BarLayout computes the bars for values inside plot. There is one bar
// per value, coloured from pal by index. Bars of zero height are
// included.
func BarLayout(labels []string, values []float64, plot Rect, pal Palette) []Bar {
	data := sanitize(values)
	n := len(data)
	rng := BarRange(data)
	barW := BarWidth(n, plot)

	bars := make([]Bar, n)
	for i, v := range data {
		barH := max(v, 0) / rng.Max * plot.Height
		bars[i] = Bar{
			X:      BarX(i, n, plot, barW),
			Y:      plot.Bottom() - barH,
			Width:  barW,
			Height: barH,
			Color:  pal.At(i),
			Label:  TruncateLabel(labelAt(labels, i), maxBarLabel),
		}
	}
	return bars
}

// Bar draws a bar chart of values onto surface id. It reports whether the
// surface was drawn.
func (r *Renderer) Bar(id string, labels []string, values []float64) bool {
	c, w, h, ok := r.Page.Prepare(id)
	if !ok {
		return false
	}
	defer c.Close()

	th := &r.Theme
	plot := PlotRect(w, h, BarInsets)

	c.SetRole("baseline")
	c.Stroke(PolylinePath([]vec.Vec2{
		{X: plot.Left, Y: plot.Bottom()},
		{X: plot.Right(), Y: plot.Bottom()},
	}), StrokeStyle{Color: th.Grid, Width: 1})

	bars := BarLayout(labels, values, plot, th.BarPalette)
	if len(bars) == 0 {
		Logger().Debug("bar chart has no data", "surface", id)
	}
	label := TextStyle{Size: th.BarFontSize, Color: th.LabelText, Align: AlignCenter}
	for _, b := range bars {
		if b.Height > 0 {
			c.SetRole("bar")
			c.Fill(RoundRectPath(b.X, b.Y, b.Width, b.Height, barRadius), VerticalGradient{
				Y0:   b.Y,
				Y1:   b.Y + b.Height,
				From: b.Color,
				To:   WithAlpha(b.Color, barBottomAlpha),
			})
		}
		c.SetRole("label")
		c.Text(b.Label, b.X+b.Width/2, h-labelBaseline, label)
	}
	return true
}
