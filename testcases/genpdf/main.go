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

// Command genpdf generates reference images for the chart test cases.
// It replays the recorded drawing operations of each test case into a PDF
// file and, if Ghostscript is installed, renders the PDF to a PNG at the
// device density of the chart surfaces.
//
// Text is not replayed, and colours are reduced to their luminance using
// testcases.Gray. The chart package tests compare against the PNG files.
package main

import (
	"fmt"
	"image/color"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	_, err := exec.LookPath("gs")
	haveGS := err == nil
	if !haveGS {
		fmt.Fprintln(os.Stderr, "gs not found, writing PDF files only")
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			s := tc.Surface(name)
			s.Record = true
			r := chart.NewRenderer(chart.NewPage(s))
			if !tc.Draw(r, name) {
				continue
			}

			if err := generatePDF(s, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if !haveGS {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(s *chart.Surface, pdfPath string) error {
	// one PDF point per logical unit
	w, h := float64(s.Width), float64(s.Height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; chart coordinates are top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	bg := s.Background
	for _, op := range s.Ops() {
		switch op.Kind {
		case chart.OpClear:
			bg = op.Color
			page.SetFillColor(gray(op.Color, bg))
			page.Rectangle(0, 0, w, h)
			page.Fill()
		case chart.OpFill:
			if !testcases.Drawable(op.Path) {
				continue
			}
			page.SetFillColor(gray(testcases.PaintColor(op.Paint), bg))
			replay(page, op.Path)
			page.Fill()
		case chart.OpStroke:
			if !testcases.Drawable(op.Path) || !(op.Stroke.Width > 0) {
				continue
			}
			page.SetStrokeColor(gray(op.Stroke.Color, bg))
			page.SetLineWidth(op.Stroke.Width)
			page.SetLineCap(op.Stroke.Cap)
			page.SetLineJoin(op.Stroke.Join)
			replay(page, op.Path)
			page.Stroke()
		}
	}

	return page.Close()
}

// replay adds the path p to the page. Quadratic segments are converted to
// cubic ones, since PDF has no quadratic curves.
func replay(page *document.Page, p *path.Data) {
	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = p.Coords[k]
			start = cur
			page.MoveTo(cur.X, cur.Y)
			k++
		case path.CmdLineTo:
			cur = p.Coords[k]
			page.LineTo(cur.X, cur.Y)
			k++
		case path.CmdQuadTo:
			c, end := p.Coords[k], p.Coords[k+1]
			c1 := cur.Add(c.Sub(cur).Mul(2.0 / 3))
			c2 := end.Add(c.Sub(end).Mul(2.0 / 3))
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			cur = end
			k += 2
		case path.CmdCubeTo:
			c1, c2, end := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			cur = end
			k += 3
		case path.CmdClose:
			page.ClosePath()
			cur = start
		}
	}
}

// gray returns the gray level of c composited over bg.
func gray(c, bg color.NRGBA) pdfcolor.DeviceGray {
	return pdfcolor.DeviceGray(testcases.Gray(c, bg))
}

func renderPNG(pdfPath, pngPath string) error {
	// -r144: two device pixels per point, matching chart.PixelRatio
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		fmt.Sprintf("-r%d", 72*chart.PixelRatio),
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
