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

import "math"

// Rect is a rectangle in logical units.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Insets are the margins between the surface edge and the plot area.
type Insets struct {
	Top, Right, Bottom, Left float64
}

var (
	// LineInsets leave room for axis labels on the left and round labels
	// below the plot.
	LineInsets = Insets{Top: 20, Right: 20, Bottom: 30, Left: 50}

	// BarInsets are like LineInsets with more room for category labels.
	BarInsets = Insets{Top: 20, Right: 20, Bottom: 40, Left: 50}
)

// PlotRect returns the plot area of a w×h surface. Width and height are
// clamped at zero, so a surface smaller than the insets gives an empty
// plot.
func PlotRect(w, h float64, in Insets) Rect {
	return Rect{
		Left:   in.Left,
		Top:    in.Top,
		Width:  max(w-in.Left-in.Right, 0),
		Height: max(h-in.Top-in.Bottom, 0),
	}
}

// Range is the value interval shown on the vertical axis.
type Range struct {
	Min, Max float64
}

const (
	lineFloor = 0.001
	barFloor  = 1
)

// LineRange returns the axis range for a line chart: from zero to the
// series maximum, but at least 0.001.
func LineRange(values []float64) Range {
	return Range{Min: 0, Max: seriesMax(values, lineFloor)}
}

// BarRange returns the axis range for a bar chart: from zero to the series
// maximum, but at least 1.
func BarRange(values []float64) Range {
	return Range{Min: 0, Max: seriesMax(values, barFloor)}
}

func seriesMax(values []float64, floor float64) float64 {
	m := floor
	for _, v := range values {
		if finite(v) && v > m {
			m = v
		}
	}
	return m
}

// MapY converts the value v to a y coordinate inside plot. rng.Min maps to
// the bottom edge and rng.Max to the top edge. Values outside the range
// are not clamped.
func MapY(v float64, rng Range, plot Rect) float64 {
	span := rng.Max - rng.Min
	if !(span > 0) || !finite(v) {
		return plot.Bottom()
	}
	return plot.Top + plot.Height*(1-(v-rng.Min)/span)
}

// LineX returns the x coordinate of point i of n, spreading the points
// evenly from the left to the right edge of plot. For n < 2 the left edge
// is returned.
func LineX(i, n int, plot Rect) float64 {
	if n < 2 {
		return plot.Left
	}
	return plot.Left + float64(i)/float64(n-1)*plot.Width
}

// maxBarWidth caps the bar width of sparse bar charts.
const maxBarWidth = 40

// BarWidth returns the width of each of n bars in plot: 60% of the
// per-bar slot, at most 40 units.
func BarWidth(n int, plot Rect) float64 {
	if n <= 0 {
		return maxBarWidth
	}
	return math.Min(plot.Width/float64(n)*0.6, maxBarWidth)
}

// BarX returns the left edge of bar i of n, centred in its slot.
func BarX(i, n int, plot Rect, barW float64) float64 {
	if n <= 0 {
		return plot.Left
	}
	slot := plot.Width / float64(n)
	return plot.Left + (float64(i)+0.5)*slot - barW/2
}

// sanitize returns a copy of values with non-finite entries replaced by
// zero.
func sanitize(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if finite(v) {
			out[i] = v
		}
	}
	return out
}

// labelAt returns labels[i], or "" when labels is too short.
func labelAt(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return ""
}
