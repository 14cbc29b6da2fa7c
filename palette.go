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

import "image/color"

// Palette is a colour cycle.
type Palette []color.NRGBA

// At returns colour i, wrapping around at the end of the palette. An empty
// palette gives opaque black.
func (p Palette) At(i int) color.NRGBA {
	if len(p) == 0 {
		return color.NRGBA{A: 255}
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// ParsePalette converts hex strings to a palette. Invalid entries become
// opaque black.
func ParsePalette(hex ...string) Palette {
	p := make(Palette, len(hex))
	for i, h := range hex {
		p[i] = Hex(h)
	}
	return p
}

// Strings returns the palette as "#rrggbb" strings, the inverse of
// ParsePalette.
func (p Palette) Strings() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = HexString(c)
	}
	return out
}

var (
	// BarPalette colours the bars of a bar chart.
	BarPalette = ParsePalette("#6366f1", "#8b5cf6", "#06b6d4", "#10b981", "#f59e0b", "#f43f5e", "#a855f7")

	// PiePalette colours the slices of a pie chart and its legend.
	PiePalette = ParsePalette("#6366f1", "#f59e0b", "#f43f5e", "#10b981", "#06b6d4", "#8b5cf6")
)
