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

package chart_test

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/chart/testcases"
)

// TestAgainstReference compares the geometry of every test case against
// reference images rendered by Ghostscript. The references are generated
// by testcases/genpdf; cases without a reference are skipped.
func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				refPath := filepath.Join("testdata", "reference", name+".png")
				expected, err := loadGray(refPath)
				if errors.Is(err, fs.ErrNotExist) {
					t.Skip("no reference image, run testcases/genpdf")
				} else if err != nil {
					t.Fatal(err)
				}

				actual := testcases.RenderGray(render(t, tc))
				if !expected.Rect.Eq(actual.Rect) {
					t.Fatalf("size mismatch: reference %v, rendered %v",
						expected.Rect, actual.Rect)
				}
				compareGray(t, name, expected, actual)
			})
		}
	}
}

func loadGray(fname string) (*image.Gray, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	if g, ok := src.(*image.Gray); ok {
		return g, nil
	}
	b := src.Bounds()
	g := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g.Set(x, y, color.GrayModel.Convert(src.At(x, y)))
		}
	}
	return g, nil
}

func compareGray(t *testing.T, name string, expected, actual *image.Gray) {
	t.Helper()

	const (
		tolerance      = 2  // gray levels
		maxDiffPercent = 10 // percent of pixels
	)

	b := expected.Bounds()
	total := b.Dx() * b.Dy()
	diffCount := 0
	maxDiff := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d := int(expected.GrayAt(x, y).Y) - int(actual.GrayAt(x, y).Y)
			d = max(d, -d)
			if d > tolerance {
				diffCount++
			}
			maxDiff = max(maxDiff, d)
		}
	}

	percent := 100 * float64(diffCount) / float64(total)
	if percent > maxDiffPercent {
		writeGrayDiff(t, name, expected, actual)
		t.Errorf("%.1f%% of pixels differ (max difference %d)", percent, maxDiff)
	}
}

// writeGrayDiff writes a diff image to debug/. The reference is shown in
// red and the rendered image in green.
func writeGrayDiff(t *testing.T, name string, expected, actual *image.Gray) {
	t.Helper()
	if err := os.MkdirAll("debug", 0755); err != nil {
		t.Log(err)
		return
	}

	b := expected.Bounds()
	diff := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			diff.Set(x, y, color.RGBA{
				R: expected.GrayAt(x, y).Y,
				G: actual.GrayAt(x, y).Y,
				A: 255,
			})
		}
	}

	fname := filepath.Join("debug", fmt.Sprintf("%s-diff.png", name))
	f, err := os.Create(fname)
	if err != nil {
		t.Log(err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, diff); err != nil {
		t.Log(err)
		return
	}
	t.Logf("diff image written to %s", fname)
}
