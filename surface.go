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
	"slices"
	"sync"
)

// PixelRatio is the number of device pixels per logical unit, in both
// directions. Backing buffers are allocated at this density regardless of
// the output device.
const PixelRatio = 2

// Surface is a named drawing area with a laid-out logical size. It keeps
// the pixels of the last render.
type Surface struct {
	ID            string
	Width, Height int
	Background    color.NRGBA

	// Hidden surfaces are skipped by Prepare.
	Hidden bool

	// Record enables the op log, see Ops.
	Record bool

	mu  sync.Mutex
	img *image.RGBA
	ops []Op
}

// NewSurface returns a visible surface of the given logical size.
func NewSurface(id string, width, height int, bg color.NRGBA) *Surface {
	return &Surface{ID: id, Width: width, Height: height, Background: bg}
}

// Image returns a copy of the device pixels, or nil if the surface has
// not been rendered yet.
func (s *Surface) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img == nil {
		return nil
	}
	img := image.NewRGBA(s.img.Rect)
	copy(img.Pix, s.img.Pix)
	return img
}

// Ops returns the operations recorded during the last render. The log is
// empty unless Record was set when the render started.
func (s *Surface) Ops() []Op {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.ops)
}

// Page is the set of surfaces charts can be drawn on. It is safe for
// concurrent use; renders to the same surface are serialised.
type Page struct {
	mu       sync.RWMutex
	surfaces []*Surface
}

// NewPage returns a page holding the given surfaces.
func NewPage(surfaces ...*Surface) *Page {
	p := &Page{}
	for _, s := range surfaces {
		p.Add(s)
	}
	return p
}

// Add places s on the page, replacing any surface with the same ID.
func (p *Page) Add(s *Surface) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, old := range p.surfaces {
		if old.ID == s.ID {
			p.surfaces[i] = s
			return
		}
	}
	p.surfaces = append(p.surfaces, s)
}

// Lookup returns the surface with the given ID, or nil.
func (p *Page) Lookup(id string) *Surface {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, s := range p.surfaces {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Surfaces returns all surfaces in the order they were added.
func (p *Page) Surfaces() []*Surface {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.surfaces)
}

// Prepare readies the surface id for a new render. The backing buffer is
// resized to PixelRatio times the logical size and cleared to the
// background colour, and the returned canvas maps logical units to device
// pixels. w and h give the logical size.
//
// If the surface does not exist, is hidden, or has no area, Prepare
// returns ok == false and the caller must not draw.
//
// The surface stays locked until the canvas is closed.
func (p *Page) Prepare(id string) (c *Canvas, w, h float64, ok bool) {
	s := p.Lookup(id)
	switch {
	case s == nil:
		Logger().Debug("surface not found", "surface", id)
		return nil, 0, 0, false
	case s.Hidden || s.Width <= 0 || s.Height <= 0:
		Logger().Debug("surface not visible", "surface", id,
			"width", s.Width, "height", s.Height)
		return nil, 0, 0, false
	}

	s.mu.Lock()
	r := image.Rect(0, 0, s.Width*PixelRatio, s.Height*PixelRatio)
	if s.img == nil || s.img.Rect != r {
		s.img = image.NewRGBA(r)
	}
	s.ops = s.ops[:0]
	var ops *[]Op
	if s.Record {
		ops = &s.ops
	}

	c = newCanvas(s.img, PixelRatio, ops)
	c.unlock = s.mu.Unlock
	c.Clear(s.Background)
	return c, c.w, c.h, true
}
