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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

var benchSizes = []int{64, 400, 2000}

// BenchmarkDonut fills a donut (outer circle CCW, inner circle CW), the
// most expensive shape drawn by the pie chart.
func BenchmarkDonut(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := New(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			c := float64(size) / 2
			p := &path.Data{}
			addCircle(p, c, c, float64(size)*0.45, false)
			addCircle(p, c, c, float64(size)*0.45*0.55, true)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Fill(p, func(y, xMin int, cov []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, v := range cov {
						row[i] = uint8(v * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorDonut draws the same shape with x/image/vector.
func BenchmarkVectorDonut(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			c := float32(size) / 2
			outer := float32(size) * 0.45
			inner := outer * 0.55

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addVectorCircle(r, c, c, outer, false)
				addVectorCircle(r, c, c, inner, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkPolyline strokes a zig-zag line with round joins, as drawn by
// the line chart.
func BenchmarkPolyline(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := New(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			s := float64(size)
			p := &path.Data{}
			p.MoveTo(vec.Vec2{X: 0.05 * s, Y: 0.9 * s})
			for i := 1; i <= 20; i++ {
				y := 0.2 * s
				if i%2 == 0 {
					y = 0.8 * s
				}
				p.LineTo(vec.Vec2{X: 0.05*s + 0.045*s*float64(i), Y: y})
			}

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Width = 4
				r.Join = graphics.LineJoinRound
				r.Cap = graphics.LineCapRound
				r.Stroke(p, func(y, xMin int, cov []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, v := range cov {
						row[i] = uint8(v * 255)
					}
				})
			}
		})
	}
}

func addCircle(p *path.Data, cx, cy, r float64, clockwise bool) {
	k := kappa * r
	if clockwise {
		p.MoveTo(vec.Vec2{X: cx, Y: cy - r})
		p.CubeTo(vec.Vec2{X: cx - k, Y: cy - r}, vec.Vec2{X: cx - r, Y: cy - k}, vec.Vec2{X: cx - r, Y: cy})
		p.CubeTo(vec.Vec2{X: cx - r, Y: cy + k}, vec.Vec2{X: cx - k, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r})
		p.CubeTo(vec.Vec2{X: cx + k, Y: cy + r}, vec.Vec2{X: cx + r, Y: cy + k}, vec.Vec2{X: cx + r, Y: cy})
		p.CubeTo(vec.Vec2{X: cx + r, Y: cy - k}, vec.Vec2{X: cx + k, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r})
		p.Close()
		return
	}
	p.MoveTo(vec.Vec2{X: cx + r, Y: cy})
	p.CubeTo(vec.Vec2{X: cx + r, Y: cy + k}, vec.Vec2{X: cx + k, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r})
	p.CubeTo(vec.Vec2{X: cx - k, Y: cy + r}, vec.Vec2{X: cx - r, Y: cy + k}, vec.Vec2{X: cx - r, Y: cy})
	p.CubeTo(vec.Vec2{X: cx - r, Y: cy - k}, vec.Vec2{X: cx - k, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r})
	p.CubeTo(vec.Vec2{X: cx + k, Y: cy - r}, vec.Vec2{X: cx + r, Y: cy - k}, vec.Vec2{X: cx + r, Y: cy})
	p.Close()
}

func addVectorCircle(z *vector.Rasterizer, cx, cy, r float32, clockwise bool) {
	k := float32(kappa) * r
	if clockwise {
		z.MoveTo(cx, cy-r)
		z.CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		z.CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		z.CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
		z.CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		z.ClosePath()
		return
	}
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}
