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
)

// Paint determines the colour of filled areas.
type Paint interface {
	// premul returns the premultiplied colour at logical height y, with
	// components in [0, 1].
	premul(y float64) [4]float32
}

// Solid paints with a single colour.
type Solid color.NRGBA

func (s Solid) premul(float64) [4]float32 {
	return premultiply(color.NRGBA(s))
}

// VerticalGradient interpolates linearly between From at logical height
// Y0 and To at Y1. Outside this range the nearest end colour is used.
// Interpolation happens on premultiplied colours.
type VerticalGradient struct {
	Y0, Y1   float64
	From, To color.NRGBA
}

func (g VerticalGradient) premul(y float64) [4]float32 {
	a, b := premultiply(g.From), premultiply(g.To)
	if g.Y1 == g.Y0 {
		// degenerate gradients paint nothing, like a zero-length canvas
		// gradient
		return [4]float32{}
	}
	t := float32((y - g.Y0) / (g.Y1 - g.Y0))
	t = min(max(t, 0), 1)
	var out [4]float32
	for i := range out {
		out[i] = a[i] + (b[i]-a[i])*t
	}
	return out
}

func premultiply(c color.NRGBA) [4]float32 {
	a := float32(c.A) / 255
	return [4]float32{
		float32(c.R) / 255 * a,
		float32(c.G) / 255 * a,
		float32(c.B) / 255 * a,
		a,
	}
}

// blend composites src with coverage cov over the premultiplied RGBA
// pixel px.
func blend(px []uint8, src [4]float32, cov float32) {
	sa := src[3] * cov
	if sa <= 0 {
		return
	}
	inv := 1 - sa
	for i := range 4 {
		d := float32(px[i]) / 255
		v := src[i]*cov + d*inv
		px[i] = uint8(min(max(v, 0), 1)*255 + 0.5)
	}
}
