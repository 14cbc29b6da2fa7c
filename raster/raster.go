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

// Package raster converts vector paths into anti-aliased pixel coverage.
//
// Coverage is computed analytically from signed edge areas, so results do
// not depend on sample patterns and are bit-reproducible. Paths are given
// in user space and mapped to device pixels by the CTM.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline. Pixel xMin+i has
// coverage cov[i] in the range [0, 1]. The slice is only valid during the
// call.
type EmitFunc func(y, xMin int, cov []float32)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// Rasterizer fills and strokes paths. The zero value is not usable; call
// New. Internal buffers are kept between calls, so a Rasterizer should be
// reused for all paths drawn onto one surface.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. It must be non-singular.
	CTM matrix.Matrix

	// Clip restricts output to this integer-aligned device rectangle.
	Clip rect.Rect

	// Flatness is the maximal curve approximation error in device pixels.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	// Cap is the style used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the style used where two stroke segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit converts miter joins to bevels when exceeded.
	MiterLimit float64

	cover  []float32
	area   []float32
	edges  []edge
	active []int

	haveBBox       bool
	bbXMin, bbXMax float64
	bbYMin, bbYMax float64
	segs           []segment
	subpaths       []subpath
	dots           []vec.Vec2
	outline        []vec.Vec2
	outlineStarts  []int
}

// New returns a Rasterizer for the given clip rectangle. All other
// parameters are set to the PDF defaults.
func New(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
}

// Fill rasterizes the interior of p using the nonzero winding rule.
func (r *Rasterizer) Fill(p *path.Data, emit EmitFunc) {
	if p == nil {
		return
	}
	r.beginEdges()

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuad(cur, p.Coords[k], p.Coords[k+1], r.addEdge)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCube(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	// fills close open subpaths implicitly
	if cur != start {
		r.addEdge(cur, start)
	}

	r.scan(emit)
}

// linear applies the linear part of the CTM.
func (r *Rasterizer) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuad approximates a quadratic Bézier curve by line segments.
func (r *Rasterizer) flattenQuad(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := r.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCube approximates a cubic Bézier curve by line segments, using
// Wang's formula for the segment count.
func (r *Rasterizer) flattenCube(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

func (r *Rasterizer) beginEdges() {
	r.edges = r.edges[:0]
	r.haveBBox = false
}

// addEdge maps a user space segment to device space and records it.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	x0 := r.CTM[0]*a.X + r.CTM[2]*a.Y + r.CTM[4]
	y0 := r.CTM[1]*a.X + r.CTM[3]*a.Y + r.CTM[5]
	x1 := r.CTM[0]*b.X + r.CTM[2]*b.Y + r.CTM[4]
	y1 := r.CTM[1]*b.X + r.CTM[3]*b.Y + r.CTM[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold || math.IsNaN(dy) {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if !r.haveBBox {
		r.bbXMin, r.bbXMax = min(x0, x1), max(x0, x1)
		r.bbYMin, r.bbYMax = min(y0, y1), max(y0, y1)
		r.haveBBox = true
		return
	}
	r.bbXMin = min(r.bbXMin, x0, x1)
	r.bbXMax = max(r.bbXMax, x0, x1)
	r.bbYMin = min(r.bbYMin, y0, y1)
	r.bbYMax = max(r.bbYMax, y0, y1)
}

// bounds returns the pixel range touched by the collected edges, clamped
// to the clip rectangle.
func (r *Rasterizer) bounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bbXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bbYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Coverage model:
//
// Every edge crossing pixel column x within a scanline contributes
//
//	cover[x] += sign * dy
//	area[x]  += sign * dy * (1 - xFrac)
//
// where dy is the vertical extent inside the scanline and xFrac the
// horizontal position of the crossing within the pixel. Walking the row
// from left to right, the coverage of pixel x is acc + area[x], after which
// cover[x] is added to acc. This is the exact signed area of the path
// inside each pixel.

// scan walks the collected edges scanline by scanline.
func (r *Rasterizer) scan(emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.bounds()
	if !ok {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf, yNext := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].top() < yNext {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.bottom() <= yf {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if cov, off := trimZeros(r.cover); cov != nil {
			emit(y, xMin+off, cov)
		}
	}
}

// accumulate adds the contribution of e within scanline y. It reports
// whether anything was added.
func (r *Rasterizer) accumulate(e *edge, y, xMin, xMax int) bool {
	yTop := max(float64(y), e.top())
	yBot := min(float64(y+1), e.bottom())
	if yBot <= yTop {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	pixL := int(math.Floor(min(xa, xb)))
	pixR := int(math.Floor(max(xa, xb)))

	switch {
	case pixR < xMin:
		// left of the window: full carry into the first pixel
		c := sign * float32(yBot-yTop)
		r.cover[0] += c
		r.area[0] += c
		return true
	case pixL >= xMax:
		return false
	case pixL == pixR:
		r.addPiece(e, yTop, yBot, sign, pixL, xMin, xMax)
		return true
	}

	// split the edge at pixel column boundaries
	dydx := 1 / e.dxdy
	for pix := pixL; pix <= min(pixR, xMax-1); pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		r.addPiece(e, lo, hi, sign, pix, xMin, xMax)
	}
	return true
}

// addPiece records the part of e between lo and hi, which lies inside
// pixel column pix.
func (r *Rasterizer) addPiece(e *edge, lo, hi float64, sign float32, pix, xMin, xMax int) {
	c := sign * float32(hi-lo)
	if pix < xMin {
		r.cover[0] += c
		r.area[0] += c
		return
	}
	if pix >= xMax {
		return
	}
	xMid := e.x0 + e.dxdy*((lo+hi)/2-e.y0)
	frac := xMid - float64(pix)
	i := pix - xMin
	r.cover[i] += c
	r.area[i] += c * float32(1-frac)
}

// integrateNonZero turns accumulated cover/area into coverage, in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros strips zero coverage from both ends.
func trimZeros(cov []float32) ([]float32, int) {
	lo, hi := 0, len(cov)
	for lo < hi && cov[lo] == 0 {
		lo++
	}
	for hi > lo && cov[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return cov[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF/PostScript.
	defaultMiterLimit = 10.0

	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
	collinearityThreshold   = 1e-6
)
