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

// Package testcases holds chart scenarios shared between the tests and
// the command that renders them for visual review.
package testcases

import (
	"fmt"

	"seehuhn.de/go/chart"
)

// Default surface size in logical units.
const (
	DefaultWidth  = 520
	DefaultHeight = 220
)

// Kind selects the chart renderer.
type Kind int

const (
	Line Kind = iota
	Bar
	Pie
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Bar:
		return "bar"
	case Pie:
		return "pie"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// TestCase defines a single chart render.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Kind   Kind
	Labels []string
	Values []float64
	Color  string // series colour of line charts
	Width  int    // logical surface width, DefaultWidth if zero
	Height int    // logical surface height, DefaultHeight if zero
}

// Size returns the logical surface size.
func (tc TestCase) Size() (w, h int) {
	w, h = tc.Width, tc.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	return w, h
}

// Surface returns a fresh surface for the test case, using the background
// of the dashboard.
func (tc TestCase) Surface(id string) *chart.Surface {
	w, h := tc.Size()
	return chart.NewSurface(id, w, h, chart.Hex(Background))
}

// Draw renders the test case onto surface id.
func (tc TestCase) Draw(r *chart.Renderer, id string) bool {
	switch tc.Kind {
	case Line:
		return r.Line(id, tc.Labels, tc.Values, chart.Hex(tc.Color))
	case Bar:
		return r.Bar(id, tc.Labels, tc.Values)
	case Pie:
		return r.Pie(id, tc.Labels, tc.Values)
	}
	return false
}

// Background is the surface colour used for all test cases.
const Background = "#111827"

const (
	costColor      = "#6366f1"
	consensusColor = "#10b981"
)

func rounds(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprint(i + 1)
	}
	return labels
}
