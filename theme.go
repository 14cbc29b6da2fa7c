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

// Theme holds the colours and font sizes shared by all chart types.
type Theme struct {
	Grid      color.NRGBA // horizontal grid lines
	AxisText  color.NRGBA // value labels left of the plot
	LabelText color.NRGBA // category labels and legend text
	Hole      color.NRGBA // centre of donut charts

	AxisFontSize   float64
	LabelFontSize  float64 // line chart point labels
	BarFontSize    float64
	LegendFontSize float64

	BarPalette Palette
	PiePalette Palette
}

// DefaultTheme is the dark dashboard theme.
var DefaultTheme = Theme{
	Grid:      color.NRGBA{R: 255, G: 255, B: 255, A: 15},
	AxisText:  Hex("#64748b"),
	LabelText: Hex("#94a3b8"),
	Hole:      Hex("#111827"),

	AxisFontSize:   10,
	LabelFontSize:  10,
	BarFontSize:    9,
	LegendFontSize: 11,

	BarPalette: BarPalette,
	PiePalette: PiePalette,
}
