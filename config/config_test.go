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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/chart"
)

func TestDefaultValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	for _, id := range SurfaceIDs {
		if _, err := cfg.Surface(id); err != nil {
			t.Errorf("default config lacks %s: %v", id, err)
		}
	}
	th := cfg.ChartTheme()
	if th.Grid != chart.DefaultTheme.Grid {
		t.Errorf("grid colour %v, want %v", th.Grid, chart.DefaultTheme.Grid)
	}
	if len(th.BarPalette) != 7 || len(th.PiePalette) != 6 {
		t.Errorf("palettes of length %d and %d", len(th.BarPalette), len(th.PiePalette))
	}
	if th.BarPalette.At(3) != chart.BarPalette.At(3) {
		t.Errorf("bar palette differs from the chart default")
	}
}

func TestDefaultThemeStrings(t *testing.T) {
	tc := Default().Theme
	for _, c := range []struct {
		name, got, want string
	}{
		{"background", tc.Background, "#111827"},
		{"grid", tc.Grid, "#ffffff0f"},
		{"axis text", tc.AxisText, "#64748b"},
		{"hole", tc.Hole, "#111827"},
		{"cost", tc.CostColor, "#6366f1"},
		{"consensus", tc.ConsensusColor, "#10b981"},
		{"first pie colour", tc.PiePalette[0], "#6366f1"},
		{"last bar colour", tc.BarPalette[6], "#a855f7"},
	} {
		if c.got != c.want {
			t.Errorf("%s: %q, want %q", c.name, c.got, c.want)
		}
	}

	// converting back gives the chart default
	th := Default().ChartTheme()
	if !slices.Equal(th.PiePalette, chart.DefaultTheme.PiePalette) ||
		th.LabelText != chart.DefaultTheme.LabelText ||
		th.LegendFontSize != chart.DefaultTheme.LegendFontSize {
		t.Errorf("theme round trip: %+v", th)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "charts.yaml")

	cfg := Default()
	cfg.Theme.CostColor = "#ff0000"
	cfg.Surfaces[SurfaceTokens] = SurfaceConfig{Width: 300, Height: 150, Hidden: true}
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Theme.CostColor != "#ff0000" {
		t.Errorf("cost colour %q", got.Theme.CostColor)
	}
	if s := got.Surfaces[SurfaceTokens]; s.Width != 300 || !s.Hidden {
		t.Errorf("tokens surface %+v", s)
	}
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts.yaml")
	data := "theme:\n  consensus_color: \"#00ff00\"\n  legend_font_size: 14\noutput:\n  dir: out\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Dir != "out" || cfg.Output.Workbook != "run.xlsx" {
		t.Errorf("output %+v", cfg.Output)
	}
	if len(cfg.Surfaces) != 4 {
		t.Errorf("%d surfaces, want defaults", len(cfg.Surfaces))
	}
	cost, consensus := cfg.SeriesColors()
	if cost != chart.Hex("#6366f1") || consensus != chart.Hex("#00ff00") {
		t.Errorf("series colours %v %v", cost, consensus)
	}
	th := cfg.ChartTheme()
	if th.LegendFontSize != 14 || th.AxisFontSize != 10 {
		t.Errorf("font sizes %g %g", th.LegendFontSize, th.AxisFontSize)
	}
}

func TestLoadUnknownSurface(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts.yaml")
	data := "surfaces:\n  chart-latency:\n    width: 100\n    height: 100\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrUnknownSurface) {
		t.Errorf("got %v, want ErrUnknownSurface", err)
	}
	if _, err := Default().Surface("chart-latency"); !errors.Is(err, ErrUnknownSurface) {
		t.Errorf("Surface: got %v", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil || cfg == nil {
		t.Fatalf("empty path: %v", err)
	}
	cfg, err = LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil || cfg.Output.Dir != Default().Output.Dir {
		t.Fatalf("missing file: %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("surfaces: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrDefault(bad); err == nil {
		t.Errorf("malformed file gave no error")
	}
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts.yaml")
	if err := InitConfig(path); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("output:\n  dir: keep\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// an existing file is left alone
	if err := InitConfig(path); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Dir != "keep" {
		t.Errorf("existing config overwritten")
	}
}

func TestPage(t *testing.T) {
	cfg := Default()
	delete(cfg.Surfaces, SurfaceProvider)
	cfg.Surfaces[SurfaceTokens] = SurfaceConfig{Width: 10, Height: 10, Hidden: true}

	page := cfg.Page()
	if page.Lookup(SurfaceProvider) != nil {
		t.Errorf("unconfigured surface on page")
	}
	if s := page.Lookup(SurfaceTokens); s == nil || !s.Hidden {
		t.Errorf("tokens surface %+v", s)
	}
	if s := page.Lookup(SurfaceCost); s == nil || s.Width != 520 || s.Background != chart.Hex("#111827") {
		t.Errorf("cost surface %+v", s)
	}
}
