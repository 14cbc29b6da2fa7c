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
	"image"
	"image/color"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Align is the horizontal anchor of a text label.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// TextStyle describes how a label is drawn. Size is the font size in
// logical units.
type TextStyle struct {
	Size  float64
	Color color.NRGBA
	Align Align
}

// labelFont is parsed once and shared read-only between all canvases.
var labelFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// face returns a face for the given logical size. Faces hold glyph
// buffers and are not safe for concurrent use, so every canvas keeps
// its own.
func (c *Canvas) face(size float64) (font.Face, error) {
	px := size * c.ratio
	if f, ok := c.faces[px]; ok {
		return f, nil
	}
	fnt, err := labelFont()
	if err != nil {
		return nil, err
	}
	f, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	if c.faces == nil {
		c.faces = make(map[float64]font.Face)
	}
	c.faces[px] = f
	return f, nil
}

// MeasureText returns the advance width of s in logical units.
func (c *Canvas) MeasureText(s string, size float64) float64 {
	f, err := c.face(size)
	if err != nil {
		return 0
	}
	return fixedToFloat(font.MeasureString(f, s)) / c.ratio
}

// Text draws s with its baseline at logical height y. The horizontal
// position x is interpreted according to st.Align.
func (c *Canvas) Text(s string, x, y float64, st TextStyle) {
	c.record(Op{Kind: OpText, Text: s, X: x, Y: y, Size: st.Size, Color: st.Color, Align: st.Align})
	if s == "" || st.Size <= 0 || !finite(x) || !finite(y) {
		return
	}
	f, err := c.face(st.Size)
	if err != nil {
		Logger().Warn("label font unavailable", "err", err)
		return
	}

	switch st.Align {
	case AlignCenter:
		x -= c.MeasureText(s, st.Size) / 2
	case AlignRight:
		x -= c.MeasureText(s, st.Size)
	}
	px, py := x*c.ratio, y*c.ratio

	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(st.Color),
		Face: f,
		Dot:  fixed.Point26_6{X: floatToFixed(px), Y: floatToFixed(py)},
	}
	d.DrawString(s)
}

func (c *Canvas) closeFaces() {
	for _, f := range c.faces {
		_ = f.Close()
	}
	clear(c.faces)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
