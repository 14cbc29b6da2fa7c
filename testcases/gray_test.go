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
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/chart"
)

func TestGray(t *testing.T) {
	black := color.NRGBA{A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	if g := Gray(white, black); g != 1 {
		t.Errorf("white: got %g", g)
	}
	if g := Gray(black, white); g != 0 {
		t.Errorf("black: got %g", g)
	}
	if g := Gray(color.NRGBA{}, white); g != 1 {
		t.Errorf("transparent: got %g", g)
	}
	half := color.NRGBA{R: 255, G: 255, B: 255, A: 51}
	if g := Gray(half, black); math.Abs(g-0.2) > 1e-9 {
		t.Errorf("translucent: got %g, want 0.2", g)
	}
}

func TestRenderGray(t *testing.T) {
	tc, ok := Find("pie", "single_provider")
	if !ok {
		t.Fatal("test case not found")
	}
	s := tc.Surface("pie")
	s.Record = true
	if !tc.Draw(chart.NewRenderer(chart.NewPage(s)), "pie") {
		t.Fatal("surface was not drawn")
	}

	img := RenderGray(s)
	w, h := tc.Size()
	if img.Rect.Dx() != w*chart.PixelRatio || img.Rect.Dy() != h*chart.PixelRatio {
		t.Fatalf("got size %v", img.Rect)
	}

	bg := chart.Hex(Background)
	level := func(c color.NRGBA) uint8 {
		return uint8(math.Round(Gray(c, bg) * 255))
	}
	// logical points: corner, donut ring above the centre, hole centre
	cx, cy := 0.4*float64(w), float64(h)/2
	points := []struct {
		x, y float64
		want uint8
	}{
		{2, 2, level(bg)},
		{cx, cy - 60, level(chart.PiePalette[0])},
		{cx, cy, level(chart.DefaultTheme.Hole)},
	}
	for _, p := range points {
		x, y := int(p.x*chart.PixelRatio), int(p.y*chart.PixelRatio)
		got := img.GrayAt(x, y).Y
		if d := int(got) - int(p.want); d < -1 || d > 1 {
			t.Errorf("(%g, %g): got level %d, want %d", p.x, p.y, got, p.want)
		}
	}
}

func TestRenderGrayOmitsText(t *testing.T) {
	s := chart.NewSurface("text", 60, 30, chart.Hex(Background))
	s.Record = true
	c, _, _, ok := chart.NewPage(s).Prepare("text")
	if !ok {
		t.Fatal("surface not prepared")
	}
	c.Clear(s.Background)
	c.Text("R1", 4, 20, chart.TextStyle{Size: 16, Color: chart.Hex("#ffffff")})
	c.Close()

	img := RenderGray(s)
	want := uint8(math.Round(Gray(s.Background, s.Background) * 255))
	for i, v := range img.Pix {
		if v != want {
			t.Fatalf("pixel %d: got level %d, want %d", i, v, want)
		}
	}
}
