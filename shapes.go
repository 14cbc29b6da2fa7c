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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// RectPath returns a closed axis aligned rectangle.
func RectPath(x, y, w, h float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y + h}).
		LineTo(vec.Vec2{X: x, Y: y + h}).
		Close()
}

// RoundRectPath returns a rectangle with circular corners of radius r.
// The radius is reduced to fit when the rectangle is small. Rectangles
// without area give an empty path.
func RoundRectPath(x, y, w, h, r float64) *path.Data {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	p := &path.Data{}
	if w == 0 || h == 0 {
		return p
	}
	r = min(max(r, 0), w/2, h/2)
	if r == 0 {
		return RectPath(x, y, w, h)
	}

	p.MoveTo(vec.Vec2{X: x + r, Y: y})
	p.LineTo(vec.Vec2{X: x + w - r, Y: y})
	appendArc(p, x+w-r, y+r, r, -math.Pi/2, 0)
	p.LineTo(vec.Vec2{X: x + w, Y: y + h - r})
	appendArc(p, x+w-r, y+h-r, r, 0, math.Pi/2)
	p.LineTo(vec.Vec2{X: x + r, Y: y + h})
	appendArc(p, x+r, y+h-r, r, math.Pi/2, math.Pi)
	p.LineTo(vec.Vec2{X: x, Y: y + r})
	appendArc(p, x+r, y+r, r, math.Pi, 3*math.Pi/2)
	return p.Close()
}

// CirclePath returns a full circle.
func CirclePath(cx, cy, r float64) *path.Data {
	p := (&path.Data{}).MoveTo(vec.Vec2{X: cx + r, Y: cy})
	appendArc(p, cx, cy, r, 0, 2*math.Pi)
	return p.Close()
}

// SectorPath returns a pie slice from angle a0 to a1, in radians. Angles
// increase clockwise on screen, with 0 pointing right.
func SectorPath(cx, cy, r, a0, a1 float64) *path.Data {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: cx, Y: cy}).
		LineTo(vec.Vec2{X: cx + r*math.Cos(a0), Y: cy + r*math.Sin(a0)})
	appendArc(p, cx, cy, r, a0, a1)
	return p.Close()
}

// PolylinePath returns an open path through pts.
func PolylinePath(pts []vec.Vec2) *path.Data {
	p := &path.Data{}
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	return p
}

// appendArc adds a circular arc using one cubic Bézier segment per
// quarter turn or less. The current point must be the arc start.
func appendArc(p *path.Data, cx, cy, r, a0, a1 float64) {
	sweep := a1 - a0
	if sweep == 0 || !(r > 0) || !finite(sweep) {
		return
	}
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4) * r

	t0 := a0
	for i := range n {
		t1 := a0 + step*float64(i+1)
		s0, c0 := math.Sincos(t0)
		s1, c1 := math.Sincos(t1)
		p.CubeTo(
			vec.Vec2{X: cx + r*c0 - k*s0, Y: cy + r*s0 + k*c0},
			vec.Vec2{X: cx + r*c1 + k*s1, Y: cy + r*s1 - k*c1},
			vec.Vec2{X: cx + r*c1, Y: cy + r*s1},
		)
		t0 = t1
	}
}
