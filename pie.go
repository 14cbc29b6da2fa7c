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
	"math"
)

const (
	holeRatio = 0.55

	legendTop     = 30
	legendRowStep = 22
	legendSwatch  = 10
	legendTextGap = 16
)

// Slice is one sector of a pie chart. Angles are in radians and increase
// clockwise on screen.
type Slice struct {
	Start, Sweep float64
	Value        float64
	Label        string
	Color        color.NRGBA
}

// PieSlices divides the full circle between values, starting at the top
// and proceeding clockwise in input order. Negative and non-finite values
// count as zero. If all values are zero every slice has zero sweep.
func PieSlices(labels []string, values []float64, pal Palette) []Slice {
	data := sanitize(values)
	total := 0.0
	for i, v := range data {
		data[i] = max(v, 0)
		total += data[i]
	}
	if total == 0 {
		total = 1
	}

	out := make([]Slice, len(data))
	angle := -math.Pi / 2
	for i, v := range data {
		sweep := v / total * 2 * math.Pi
		out[i] = Slice{
			Start: angle,
			Sweep: sweep,
			Value: v,
			Label: labelAt(labels, i),
			Color: pal.At(i),
		}
		angle += sweep
	}
	return out
}

// Pie draws a donut chart of values onto surface id, with a legend on the
// right listing every label and value. It reports whether the surface was
// drawn.
func (r *Renderer) Pie(id string, labels []string, values []float64) bool {
	c, w, h, ok := r.Page.Prepare(id)
	if !ok {
		return false
	}
	defer c.Close()

	th := &r.Theme
	cx, cy := w*0.4, h/2
	radius := math.Min(w, h) * 0.35

	slices := PieSlices(labels, values, th.PiePalette)
	for _, s := range slices {
		if s.Sweep <= 0 {
			continue
		}
		c.SetRole("slice")
		c.Fill(SectorPath(cx, cy, radius, s.Start, s.Start+s.Sweep), Solid(s.Color))
	}

	c.SetRole("hole")
	c.Fill(CirclePath(cx, cy, radius*holeRatio), Solid(th.Hole))

	lx := w * 0.72
	text := TextStyle{Size: th.LegendFontSize, Color: th.LabelText, Align: AlignLeft}
	for i, s := range slices {
		y := legendTop + float64(i)*legendRowStep
		c.SetRole("legend")
		c.FillRect(lx, y, legendSwatch, legendSwatch, Solid(s.Color))
		c.Text(s.Label+": "+FormatUSD(s.Value, 4), lx+legendTextGap, y+9, text)
	}
	return true
}
