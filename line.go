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
	"seehuhn.de/go/pdf/graphics"
)

// RoundPrefix is put in front of the point labels of line charts.
const RoundPrefix = "R"

const (
	lineWidth    = 2
	markerRadius = 4

	// labelBaseline is the distance of category labels from the bottom
	// edge of the surface.
	labelBaseline = 8

	areaTopAlpha = 0x40
)

// LinePoints maps values to points in plot, evenly spaced from left to
// right. Fewer than two values give no points.
func LinePoints(values []float64, rng Range, plot Rect) []vec.Vec2 {
	n := len(values)
	if n < 2 {
		return nil
	}
	pts := make([]vec.Vec2, n)
	for i, v := range values {
		pts[i] = vec.Vec2{X: LineX(i, n, plot), Y: MapY(v, rng, plot)}
	}
	return pts
}

// Line draws a line chart of values onto surface id. The area below the
// line is shaded with a gradient of col, and every point gets a marker and
// the label RoundPrefix+labels[i]. Points without a label get an empty
// one. Line reports whether the surface was drawn.
func (r *Renderer) Line(id string, labels []string, values []float64, col color.NRGBA) bool {
	c, w, h, ok := r.Page.Prepare(id)
	if !ok {
		return false
	}
	defer c.Close()

	th := &r.Theme
	data := sanitize(values)
	plot := PlotRect(w, h, LineInsets)
	rng := LineRange(data)

	r.drawGrid(c, GridLines(rng, plot), plot)

	pts := LinePoints(data, rng, plot)
	if pts == nil {
		Logger().Debug("line chart needs two points", "surface", id, "points", len(data))
		return true
	}

	area := PolylinePath(pts)
	area.LineTo(vec.Vec2{X: plot.Right(), Y: plot.Bottom()})
	area.LineTo(vec.Vec2{X: plot.Left, Y: plot.Bottom()})
	area.Close()
	c.SetRole("area")
	c.Fill(area, VerticalGradient{
		Y0:   plot.Top,
		Y1:   plot.Bottom(),
		From: WithAlpha(col, areaTopAlpha),
		To:   WithAlpha(col, 0),
	})

	c.SetRole("line")
	c.Stroke(PolylinePath(pts), StrokeStyle{
		Color: col,
		Width: lineWidth,
		Cap:   graphics.LineCapButt,
		Join:  graphics.LineJoinMiter,
	})

	label := TextStyle{Size: th.LabelFontSize, Color: th.LabelText, Align: AlignCenter}
	for i, pt := range pts {
		c.SetRole("marker")
		c.Fill(CirclePath(pt.X, pt.Y, markerRadius), Solid(col))
		c.SetRole("label")
		text := ""
		if i < len(labels) {
			text = RoundPrefix + labels[i]
		}
		c.Text(text, pt.X, h-labelBaseline, label)
	}
	return true
}
