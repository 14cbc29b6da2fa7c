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
	"fmt"
	"image/color"
	"slices"

	"seehuhn.de/go/geom/path"
)

// OpKind identifies a drawing primitive in the op log.
type OpKind int

const (
	OpClear OpKind = iota
	OpFill
	OpStroke
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	case OpText:
		return "text"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one recorded drawing call. Only the fields relevant for Kind are
// set. Coordinates are in logical units.
type Op struct {
	Kind OpKind
	Role string // set by Canvas.SetRole

	Path   *path.Data  // copy of the path, fill and stroke
	Paint  Paint       // fill
	Stroke StrokeStyle // stroke
	Color  color.NRGBA // clear and text

	Text  string
	X, Y  float64
	Size  float64
	Align Align
}

func clonePath(p *path.Data) *path.Data {
	if p == nil {
		return nil
	}
	return &path.Data{
		Cmds:   slices.Clone(p.Cmds),
		Coords: slices.Clone(p.Coords),
	}
}

// Filter returns the ops with the given kind and role. An empty role
// matches any role.
func Filter(ops []Op, kind OpKind, role string) []Op {
	var out []Op
	for _, op := range ops {
		if op.Kind == kind && (role == "" || op.Role == role) {
			out = append(out, op)
		}
	}
	return out
}
