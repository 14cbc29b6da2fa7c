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

package testcases

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/raster"
)

// Gray returns the luminance of c composited over the opaque colour bg,
// in the range [0, 1]. Reference images reduce all colours this way.
func Gray(c, bg color.NRGBA) float64 {
	a := float64(c.A) / 255
	return a*luminance(c) + (1-a)*luminance(bg)
}

func luminance(c color.NRGBA) float64 {
	return (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
}

// PaintColor returns a representative colour of a paint. Gradients are
// represented by their start colour.
func PaintColor(p chart.Paint) color.NRGBA {
	switch p := p.(type) {
	case chart.Solid:
		return color.NRGBA(p)
	case chart.VerticalGradient:
		return p.From
	}
	return color.NRGBA{}
}

// Drawable reports whether a recorded path is replayed. Paths with
// non-finite coordinates are skipped, like the canvas does.
func Drawable(p *path.Data) bool {
	if p == nil || len(p.Cmds) == 0 {
		return false
	}
	for _, v := range p.Coords {
		if math.IsNaN(v.X) || math.IsInf(v.X, 0) || math.IsNaN(v.Y) || math.IsInf(v.Y, 0) {
			return false
		}
	}
	return true
}

// RenderGray replays the fill and stroke operations recorded on s into a
// gray image at device resolution, using the colour model of the PDF
// reference files: every operation paints the opaque gray level Gray
// gives for its colour. Text is not replayed.
func RenderGray(s *chart.Surface) *image.Gray {
	w, h := s.Width*chart.PixelRatio, s.Height*chart.PixelRatio
	img := image.NewGray(image.Rect(0, 0, w, h))
	clip := rect.Rect{URx: float64(w), URy: float64(h)}
	r := raster.New(clip)

	paint := func(g float64) raster.EmitFunc {
		return func(y, xMin int, cov []float32) {
			row := img.Pix[y*img.Stride+xMin:]
			for i, a := range cov {
				v := float64(row[i])/255*(1-float64(a)) + g*float64(a)
				row[i] = uint8(math.Round(v * 255))
			}
		}
	}
	setup := func() {
		r.Reset(clip)
		r.CTM = matrix.Scale(chart.PixelRatio, chart.PixelRatio)
	}

	bg := s.Background
	for _, op := range s.Ops() {
		switch op.Kind {
		case chart.OpClear:
			bg = op.Color
			v := uint8(math.Round(Gray(op.Color, bg) * 255))
			for i := range img.Pix {
				img.Pix[i] = v
			}
		case chart.OpFill:
			if !Drawable(op.Path) {
				continue
			}
			setup()
			r.Fill(op.Path, paint(Gray(PaintColor(op.Paint), bg)))
		case chart.OpStroke:
			if !Drawable(op.Path) || !(op.Stroke.Width > 0) {
				continue
			}
			setup()
			r.Width = op.Stroke.Width
			r.Cap = op.Stroke.Cap
			r.Join = op.Stroke.Join
			r.Stroke(op.Path, paint(Gray(op.Stroke.Color, bg)))
		}
	}
	return img
}
