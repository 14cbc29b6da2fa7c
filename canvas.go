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
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/chart/raster"
)

// Canvas draws onto a prepared surface. All coordinates are in logical
// units; the canvas maps them to device pixels with a uniform scale of
// PixelRatio. The y axis points down.
//
// A Canvas is obtained from Page.Prepare and holds the surface lock until
// Close is called.
type Canvas struct {
	img    *image.RGBA
	ratio  float64
	w, h   float64
	ctm    matrix.Matrix
	clip   rect.Rect
	ras    *raster.Rasterizer
	faces  map[float64]font.Face
	role   string
	ops    *[]Op
	unlock func()
}

// StrokeStyle describes how a path outline is drawn. The zero Cap and Join
// values give butt caps and miter joins.
type StrokeStyle struct {
	Color color.NRGBA
	Width float64
	Cap   graphics.LineCapStyle
	Join  graphics.LineJoinStyle
}

func newCanvas(img *image.RGBA, ratio float64, ops *[]Op) *Canvas {
	b := img.Bounds()
	clip := rect.Rect{URx: float64(b.Dx()), URy: float64(b.Dy())}
	return &Canvas{
		img:   img,
		ratio: ratio,
		w:     float64(b.Dx()) / ratio,
		h:     float64(b.Dy()) / ratio,
		ctm:   matrix.Scale(ratio, ratio),
		clip:  clip,
		ras:   raster.New(clip),
		ops:   ops,
	}
}

// Size returns the logical size of the canvas.
func (c *Canvas) Size() (w, h float64) {
	return c.w, c.h
}

// Image returns the device pixel buffer. It is only valid until Close.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Close releases the surface. Further drawing calls are invalid.
func (c *Canvas) Close() {
	c.closeFaces()
	if c.unlock != nil {
		c.unlock()
		c.unlock = nil
	}
}

// SetRole tags all following operations in the op log of a recording
// surface. It has no effect on the pixels.
func (c *Canvas) SetRole(role string) {
	c.role = role
}

// Clear paints the whole canvas with bg, replacing existing content.
func (c *Canvas) Clear(bg color.NRGBA) {
	c.record(Op{Kind: OpClear, Color: bg})
	p := premultiply(bg)
	var px [4]uint8
	for i := range px {
		px[i] = uint8(p[i]*255 + 0.5)
	}
	pix := c.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		copy(pix[i:i+4], px[:])
	}
}

// Fill paints the interior of p using the nonzero winding rule. Paths
// with non-finite coordinates are skipped.
func (c *Canvas) Fill(p *path.Data, paint Paint) {
	c.record(Op{Kind: OpFill, Path: clonePath(p), Paint: paint})
	if !c.drawable(p) || paint == nil {
		return
	}
	c.ras.Reset(c.clip)
	c.ras.CTM = c.ctm
	c.ras.Fill(p, c.emitter(paint))
}

// Stroke paints the outline of p.
func (c *Canvas) Stroke(p *path.Data, st StrokeStyle) {
	c.record(Op{Kind: OpStroke, Path: clonePath(p), Stroke: st})
	if !c.drawable(p) || !(st.Width > 0) {
		return
	}
	c.ras.Reset(c.clip)
	c.ras.CTM = c.ctm
	c.ras.Width = st.Width
	c.ras.Cap = st.Cap
	c.ras.Join = st.Join
	c.ras.Stroke(p, c.emitter(Solid(st.Color)))
}

// FillRect fills an axis aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, paint Paint) {
	c.Fill(RectPath(x, y, w, h), paint)
}

func (c *Canvas) drawable(p *path.Data) bool {
	if p == nil || len(p.Cmds) == 0 {
		return false
	}
	for _, v := range p.Coords {
		if !finite(v.X) || !finite(v.Y) {
			Logger().Debug("skipping path with non-finite coordinates", "role", c.role)
			return false
		}
	}
	return true
}

// emitter composites rasterizer coverage with paint into the pixel
// buffer.
func (c *Canvas) emitter(paint Paint) raster.EmitFunc {
	return func(y, xMin int, cov []float32) {
		src := paint.premul((float64(y) + 0.5) / c.ratio)
		if src[3] <= 0 {
			return
		}
		row := c.img.Pix[y*c.img.Stride+xMin*4:]
		for i, a := range cov {
			blend(row[i*4:i*4+4], src, a)
		}
	}
}

func (c *Canvas) record(op Op) {
	if c.ops == nil {
		return
	}
	op.Role = c.role
	*c.ops = append(*c.ops, op)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
