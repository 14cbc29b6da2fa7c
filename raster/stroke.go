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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a flattened stroke segment in user space.
type segment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent A→B
	N    vec.Vec2 // unit normal, T rotated by +90°
}

// subpath is a run of segments in Rasterizer.segs.
type subpath struct {
	start, end int
	closed     bool
}

// Stroke rasterizes the outline of p using Width, Cap, Join and
// MiterLimit.
//
// The stroke is built as a set of positively oriented pieces: one
// quadrilateral per segment plus join and cap geometry. All pieces are
// filled together with the nonzero rule, so overlaps are painted once.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	if p == nil || r.Width <= 0 {
		return
	}
	r.flatten(p)

	r.outline = r.outline[:0]
	r.outlineStarts = r.outlineStarts[:0]
	d := r.Width / 2

	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			r.addCircle(pt, d)
		}
	}

	for _, sp := range r.subpaths {
		segs := r.segs[sp.start:sp.end]
		for i := range segs {
			s := &segs[i]
			r.addPolygon(s.A.Add(s.N.Mul(d)), s.B.Add(s.N.Mul(d)), s.B.Sub(s.N.Mul(d)), s.A.Sub(s.N.Mul(d)))
			if i > 0 {
				r.addJoin(&segs[i-1], s, d)
			}
		}
		if sp.closed {
			r.addJoin(&segs[len(segs)-1], &segs[0], d)
		} else {
			first, last := &segs[0], &segs[len(segs)-1]
			r.addCap(first.A, first.T.Mul(-1), d)
			r.addCap(last.B, last.T, d)
		}
	}

	r.fillOutline(emit)
}

// flatten splits p into straight segments, grouped by subpath. Subpaths
// without any extent are collected in r.dots.
func (r *Rasterizer) flatten(p *path.Data) {
	r.segs = r.segs[:0]
	r.subpaths = r.subpaths[:0]
	r.dots = r.dots[:0]

	var cur, start vec.Vec2
	first := 0
	open := false
	drawn := false

	finish := func(closed bool) {
		if !open {
			return
		}
		switch {
		case len(r.segs) > first:
			r.subpaths = append(r.subpaths, subpath{start: first, end: len(r.segs), closed: closed})
		case drawn || closed:
			r.dots = append(r.dots, start)
		}
		first = len(r.segs)
		open = false
		drawn = false
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			cur = p.Coords[k]
			start = cur
			open = true
			k++
		case path.CmdLineTo:
			r.addSegment(cur, p.Coords[k])
			cur = p.Coords[k]
			drawn = true
			k++
		case path.CmdQuadTo:
			r.flattenQuad(cur, p.Coords[k], p.Coords[k+1], r.addSegment)
			cur = p.Coords[k+1]
			drawn = true
			k += 2
		case path.CmdCubeTo:
			r.flattenCube(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addSegment)
			cur = p.Coords[k+2]
			drawn = true
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addSegment(cur, start)
			}
			finish(true)
			cur = start
		}
	}
	finish(false)
}

func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	v := b.Sub(a)
	l := v.Length()
	if l < zeroLengthThreshold || math.IsNaN(l) {
		return
	}
	t := v.Mul(1 / l)
	r.segs = append(r.segs, segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// addJoin adds the join geometry between s1 and s2, which meet at s2.A.
func (r *Rasterizer) addJoin(s1, s2 *segment, d float64) {
	cross := s1.T.X*s2.T.Y - s1.T.Y*s2.T.X
	if math.Abs(cross) < collinearityThreshold && s1.T.Dot(s2.T) > 0 {
		return
	}
	p := s2.A

	if r.Join == graphics.LineJoinRound {
		r.addCircle(p, d)
		return
	}

	// the gap to fill is on the outside of the turn
	side := 1.0
	if cross > 0 {
		side = -1
	}
	o1 := p.Add(s1.N.Mul(side * d))
	o2 := p.Add(s2.N.Mul(side * d))

	if r.Join == graphics.LineJoinMiter {
		cosHalf := math.Sqrt(max(0, (1+s1.T.Dot(s2.T))/2))
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+1e-10 {
			bis := s1.N.Add(s2.N)
			if l := bis.Length(); l > zeroLengthThreshold {
				tip := p.Add(bis.Mul(side * d / (l * cosHalf)))
				r.addPolygon(p, o1, tip, o2)
				return
			}
		}
	}
	r.addPolygon(p, o1, o2)
}

// addCap adds an end cap at p. The unit vector t points away from the
// stroke.
func (r *Rasterizer) addCap(p, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(p, d)
	case graphics.LineCapSquare:
		n := vec.Vec2{X: -t.Y, Y: t.X}
		ext := p.Add(t.Mul(d))
		r.addPolygon(p.Add(n.Mul(d)), ext.Add(n.Mul(d)), ext.Sub(n.Mul(d)), p.Sub(n.Mul(d)))
	}
}

// addCircle adds a full circle, flattened to the rasterizer's tolerance.
func (r *Rasterizer) addCircle(c vec.Vec2, radius float64) {
	devR := max(r.linear(vec.Vec2{X: radius}).Length(), r.linear(vec.Vec2{Y: radius}).Length())
	n := 8
	if devR > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devR)
		if step > 0 && !math.IsNaN(step) {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}

	start := len(r.outline)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		r.outline = append(r.outline, vec.Vec2{
			X: c.X + radius*math.Cos(a),
			Y: c.Y + radius*math.Sin(a),
		})
	}
	r.outlineStarts = append(r.outlineStarts, start)
}

// addPolygon appends a closed polygon, reversed if needed so that all
// pieces share the same orientation.
func (r *Rasterizer) addPolygon(pts ...vec.Vec2) {
	start := len(r.outline)
	r.outline = append(r.outline, pts...)
	poly := r.outline[start:]

	var area float64
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		area += a.X*b.Y - b.X*a.Y
	}
	if math.Abs(area) < zeroLengthThreshold {
		r.outline = r.outline[:start]
		return
	}
	if area < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	r.outlineStarts = append(r.outlineStarts, start)
}

// fillOutline rasterizes all collected stroke pieces as one compound path.
func (r *Rasterizer) fillOutline(emit EmitFunc) {
	r.beginEdges()
	for i, start := range r.outlineStarts {
		end := len(r.outline)
		if i+1 < len(r.outlineStarts) {
			end = r.outlineStarts[i+1]
		}
		poly := r.outline[start:end]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.scan(emit)
}
