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

// Package chart draws line, bar and donut charts of small numeric series
// onto raster surfaces.
//
// A [Page] holds named [Surface] values. A [Renderer] prepares a surface,
// maps the series into the plot area of the surface and draws it through
// a [Canvas]. Drawing uses logical units; the backing buffers have
// [PixelRatio] device pixels per unit.
//
// Renderers never fail. Unknown or hidden surfaces are skipped, and empty
// or degenerate series give an empty plot.
package chart

// Renderer draws charts onto the surfaces of a page.
type Renderer struct {
	Page  *Page
	Theme Theme
}

// NewRenderer returns a renderer for page using DefaultTheme.
func NewRenderer(page *Page) *Renderer {
	return &Renderer{Page: page, Theme: DefaultTheme}
}
