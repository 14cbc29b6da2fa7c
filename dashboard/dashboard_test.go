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

package dashboard

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/config"
	"seehuhn.de/go/chart/run"
)

const sample = `{
  "query": "Should cities ban private cars?",
  "rounds_requested": 3,
  "rounds_completed": 2,
  "rounds": [
    {"round": 1, "round_cost": 0.00123, "consensus": 0.4, "responses": [
      {"agent": "Contributor 1", "provider": "OpenAI", "confidence": 0.7, "cost": 0.0005, "tokens_total": 1200},
      {"agent": "Contributor 2", "provider": "Anthropic", "confidence": 0.6, "cost": 0.00073, "tokens_total": 1400}]},
    {"round": 2, "round_cost": 0.0021, "consensus": 0.8, "responses": [
      {"agent": "Contributor 1", "provider": "OpenAI", "confidence": 0.8, "cost": 0.001, "tokens_total": 2100},
      {"agent": "Contributor 2", "provider": "Anthropic", "confidence": 0.9, "cost": 0.0011, "tokens_total": 2300}]}
  ],
  "judge": {"agent": "Synthesizer", "provider": "Google", "confidence": 0.85, "cost": 0.0009, "tokens_total": 3700},
  "total_cost": 0.00423
}`

func loadSample(t *testing.T) *run.Snapshot {
	t.Helper()
	s, err := run.Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func newRecording(t *testing.T, cfg *config.Config) *Dashboard {
	t.Helper()
	d := New(cfg)
	for _, s := range d.Renderer.Page.Surfaces() {
		s.Record = true
	}
	return d
}

func TestRender(t *testing.T) {
	d := newRecording(t, nil)
	rep := d.Render(loadSample(t))

	if _, err := uuid.Parse(rep.ID); err != nil {
		t.Errorf("report ID %q: %v", rep.ID, err)
	}
	if err := rep.Err(); err != nil {
		t.Fatal(err)
	}
	if len(rep.Outcomes) != len(config.SurfaceIDs) {
		t.Fatalf("got %d outcomes", len(rep.Outcomes))
	}
	for i, o := range rep.Outcomes {
		if o.Surface != config.SurfaceIDs[i] {
			t.Errorf("outcome %d: surface %q, want %q", i, o.Surface, config.SurfaceIDs[i])
		}
		if !o.Drawn {
			t.Errorf("%s not drawn", o.Surface)
		}
		img := d.Image(o.Surface)
		if img == nil {
			t.Fatalf("%s: no image", o.Surface)
		}
		if b := img.Bounds(); b.Dx() != 520*chart.PixelRatio || b.Dy() != 220*chart.PixelRatio {
			t.Errorf("%s: image size %v", o.Surface, b)
		}
	}

	if len(rep.RoundLines) != 2 || rep.RoundLines[1] != "Round 2 | cost $0.00210 | consensus 80%" {
		t.Errorf("round lines %q", rep.RoundLines)
	}
	if rep.TotalLine != "Run total $0.004230" {
		t.Errorf("total line %q", rep.TotalLine)
	}

	page := d.Renderer.Page
	cost := page.Lookup(config.SurfaceCost).Ops()
	if n := len(chart.Filter(cost, chart.OpFill, "marker")); n != 2 {
		t.Errorf("cost chart: %d markers, want 2", n)
	}
	tokens := page.Lookup(config.SurfaceTokens).Ops()
	if n := len(chart.Filter(tokens, chart.OpFill, "bar")); n != 3 {
		t.Errorf("token chart: %d bars, want 3", n)
	}
	legend := chart.Filter(page.Lookup(config.SurfaceProvider).Ops(), chart.OpText, "legend")
	want := []string{"OpenAI: $0.0015", "Anthropic: $0.0018", "Google: $0.0009"}
	if len(legend) != len(want) {
		t.Fatalf("got %d legend rows, want %d", len(legend), len(want))
	}
	for i, op := range legend {
		if op.Text != want[i] {
			t.Errorf("legend row %d: %q, want %q", i, op.Text, want[i])
		}
	}
}

func TestRenderSkipsSurfaces(t *testing.T) {
	cfg := config.Default()
	cfg.Surfaces[config.SurfaceTokens] = config.SurfaceConfig{Width: 520, Height: 220, Hidden: true}
	delete(cfg.Surfaces, config.SurfaceProvider)

	d := New(cfg)
	rep := d.Render(loadSample(t))
	if err := rep.Err(); err != nil {
		t.Fatal(err)
	}
	drawn := rep.Drawn()
	if len(drawn) != 2 || drawn[0] != config.SurfaceCost || drawn[1] != config.SurfaceConsensus {
		t.Errorf("drawn %q", drawn)
	}
	if d.Image(config.SurfaceProvider) != nil || d.Image(config.SurfaceTokens) != nil {
		t.Error("skipped surfaces have pixels")
	}
}

func TestRenderEmptyRun(t *testing.T) {
	d := newRecording(t, nil)
	rep := d.Render(nil)
	if err := rep.Err(); err != nil {
		t.Fatal(err)
	}
	if len(rep.Drawn()) != 4 {
		t.Errorf("drawn %q", rep.Drawn())
	}
	ops := d.Renderer.Page.Lookup(config.SurfaceCost).Ops()
	if n := len(chart.Filter(ops, chart.OpStroke, "line")); n != 0 {
		t.Errorf("empty run: %d line strokes", n)
	}
	if n := len(chart.Filter(ops, chart.OpText, "axis")); n != 5 {
		t.Errorf("empty run: %d axis labels, want 5", n)
	}
}

func TestRenderRecoversPanic(t *testing.T) {
	// a renderer without a page panics on every chart
	d := &Dashboard{Renderer: &chart.Renderer{Theme: chart.DefaultTheme}}
	rep := d.Render(loadSample(t))

	err := rep.Err()
	if !errors.Is(err, ErrPanic) {
		t.Fatalf("got %v, want ErrPanic", err)
	}
	var ce *ChartError
	if !errors.As(err, &ce) || ce.Surface != config.SurfaceCost || ce.Chart != KindLine {
		t.Errorf("first chart error: %+v", ce)
	}
	for _, o := range rep.Outcomes {
		if o.Drawn || o.Err == nil {
			t.Errorf("%s: drawn %t, err %v", o.Surface, o.Drawn, o.Err)
		}
	}
}

func TestParallelRender(t *testing.T) {
	serial := New(nil)
	parallel := New(nil)
	parallel.Parallel = true

	s := loadSample(t)
	serial.Render(s)
	rep := parallel.Render(s)
	if err := rep.Err(); err != nil {
		t.Fatal(err)
	}
	for _, id := range config.SurfaceIDs {
		a, b := serial.Image(id), parallel.Image(id)
		if a == nil || b == nil || !bytes.Equal(a.Pix, b.Pix) {
			t.Errorf("%s: parallel render differs", id)
		}
	}
}

func TestWritePNGs(t *testing.T) {
	d := New(nil)
	rep := d.Render(loadSample(t))

	dir := filepath.Join(t.TempDir(), "charts")
	paths, err := d.WritePNGs(dir, rep)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 4 {
		t.Fatalf("wrote %d files", len(paths))
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Error(err)
		}
	}
	if filepath.Base(paths[0]) != config.SurfaceCost+".png" {
		t.Errorf("first file %q", paths[0])
	}
}

func TestWorkbook(t *testing.T) {
	d := New(nil)
	rep := d.Render(loadSample(t))

	wb := d.Workbook(rep, true)
	if wb.ID != rep.ID || len(wb.Charts) != 4 {
		t.Errorf("workbook: id %q, %d charts", wb.ID, len(wb.Charts))
	}
	if wb := d.Workbook(rep, false); len(wb.Charts) != 0 {
		t.Errorf("got %d charts without pictures", len(wb.Charts))
	}

	buf := &bytes.Buffer{}
	if err := wb.Write(buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("empty workbook")
	}
}
