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

// Package dashboard renders the analytics charts of a debate run.
//
// A [Dashboard] derives the cost, consensus, token and provider series from
// a run snapshot and draws each of them on its own surface. A chart that
// cannot be drawn is reported in the [Report] and never stops the other
// charts.
package dashboard

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/config"
	"seehuhn.de/go/chart/export"
	"seehuhn.de/go/chart/run"
)

// Kind is the chart type drawn on a surface.
type Kind string

// Chart kinds.
const (
	KindLine Kind = "line"
	KindBar  Kind = "bar"
	KindPie  Kind = "pie"
)

// Dashboard draws the four charts of a run.
type Dashboard struct {
	Renderer       *chart.Renderer
	CostColor      color.NRGBA
	ConsensusColor color.NRGBA

	// Parallel renders the charts concurrently. The surfaces are
	// independent, so the result does not depend on this setting.
	Parallel bool
}

// New returns a dashboard for the given configuration. If cfg is nil,
// config.Default is used.
func New(cfg *config.Config) *Dashboard {
	if cfg == nil {
		cfg = config.Default()
	}
	cost, consensus := cfg.SeriesColors()
	return &Dashboard{
		Renderer:       &chart.Renderer{Page: cfg.Page(), Theme: cfg.ChartTheme()},
		CostColor:      cost,
		ConsensusColor: consensus,
	}
}

// Outcome is the result of drawing one chart.
type Outcome struct {
	Surface string
	Chart   Kind

	// Drawn is false if the surface was missing or hidden.
	Drawn bool

	// Err is set if the renderer failed.
	Err error
}

// Report describes one render of the dashboard.
type Report struct {
	ID      string
	Created time.Time
	Query   string
	Summary run.Summary
	Series  run.Derived

	// RoundLines holds one log line per round, TotalLine the run total.
	RoundLines []string
	TotalLine  string

	Outcomes []Outcome
}

// Err returns the errors of all failed charts, or nil.
func (r *Report) Err() error {
	var errs []error
	for _, o := range r.Outcomes {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	return errors.Join(errs...)
}

// Drawn returns the IDs of the surfaces which were drawn, in dashboard
// order.
func (r *Report) Drawn() []string {
	var ids []string
	for _, o := range r.Outcomes {
		if o.Drawn {
			ids = append(ids, o.Surface)
		}
	}
	return ids
}

// job is one chart of the dashboard.
type job struct {
	surface string
	kind    Kind
	draw    func() bool
}

// Render derives the series of s and draws all charts. A nil snapshot is
// treated like an empty run.
func (d *Dashboard) Render(s *run.Snapshot) *Report {
	if s == nil {
		s = &run.Snapshot{}
	}
	rep := &Report{
		ID:      uuid.New().String(),
		Created: time.Now(),
		Query:   s.Query,
		Summary: run.Summarize(s),
		Series:  run.Derive(s),
	}
	for _, rd := range s.Rounds {
		rep.RoundLines = append(rep.RoundLines, run.RoundLine(rd))
	}
	rep.TotalLine = run.TotalLine(s)

	jobs := d.jobs(rep.Series)
	rep.Outcomes = make([]Outcome, len(jobs))
	if d.Parallel {
		var wg sync.WaitGroup
		for i, j := range jobs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rep.Outcomes[i] = d.run(j)
			}()
		}
		wg.Wait()
	} else {
		for i, j := range jobs {
			rep.Outcomes[i] = d.run(j)
		}
	}

	log := chart.Logger().With("report", rep.ID)
	for _, o := range rep.Outcomes {
		switch {
		case o.Err != nil:
			log.Warn("chart failed", "surface", o.Surface, "chart", o.Chart, "error", o.Err)
		case !o.Drawn:
			log.Debug("chart skipped", "surface", o.Surface, "chart", o.Chart)
		default:
			log.Debug("chart drawn", "surface", o.Surface, "chart", o.Chart)
		}
	}
	log.Info("dashboard rendered",
		slog.Int("rounds", len(rep.Series.Cost.Values)),
		slog.Int("drawn", len(rep.Drawn())))
	return rep
}

func (d *Dashboard) jobs(ser run.Derived) []job {
	r := d.Renderer
	return []job{
		{config.SurfaceCost, KindLine, func() bool {
			return r.Line(config.SurfaceCost, ser.Cost.Labels, ser.Cost.Values, d.CostColor)
		}},
		{config.SurfaceConsensus, KindLine, func() bool {
			return r.Line(config.SurfaceConsensus, ser.Consensus.Labels, ser.Consensus.Values, d.ConsensusColor)
		}},
		{config.SurfaceTokens, KindBar, func() bool {
			return r.Bar(config.SurfaceTokens, ser.Tokens.Labels, ser.Tokens.Values)
		}},
		{config.SurfaceProvider, KindPie, func() bool {
			return r.Pie(config.SurfaceProvider, ser.Providers.Labels, ser.Providers.Values)
		}},
	}
}

// run draws one chart, turning a panic of the renderer into an error.
func (d *Dashboard) run(j job) (o Outcome) {
	o = Outcome{Surface: j.surface, Chart: j.kind}
	defer func() {
		if p := recover(); p != nil {
			o.Drawn = false
			o.Err = NewChartError(j.surface, j.kind, fmt.Errorf("%w: %v", ErrPanic, p))
		}
	}()
	o.Drawn = j.draw()
	return o
}

// Image returns the pixels of the surface id from the last render, or nil.
func (d *Dashboard) Image(id string) *image.RGBA {
	s := d.Renderer.Page.Lookup(id)
	if s == nil {
		return nil
	}
	return s.Image()
}

// WritePNGs writes the drawn surfaces of rep to dir, one file per surface
// named after its ID. It returns the paths of the files written. Failures
// are reported as ChartError values and do not stop the other files.
func (d *Dashboard) WritePNGs(dir string, rep *Report) ([]string, error) {
	var paths []string
	var errs []error
	for _, o := range rep.Outcomes {
		if !o.Drawn {
			continue
		}
		path := filepath.Join(dir, o.Surface+".png")
		if err := export.WritePNGFile(path, d.Image(o.Surface)); err != nil {
			errs = append(errs, NewChartError(o.Surface, o.Chart, err))
			continue
		}
		chart.Logger().Debug("chart written", "surface", o.Surface, "path", path)
		paths = append(paths, path)
	}
	return paths, errors.Join(errs...)
}

// Workbook collects the data of rep for xlsx export. If pictures is set,
// the drawn charts are included as images.
func (d *Dashboard) Workbook(rep *Report, pictures bool) *export.Workbook {
	wb := &export.Workbook{
		ID:         rep.ID,
		Query:      rep.Query,
		Summary:    rep.Summary,
		Series:     rep.Series,
		RoundLines: rep.RoundLines,
		TotalLine:  rep.TotalLine,
	}
	if pictures {
		for _, id := range rep.Drawn() {
			if img := d.Image(id); img != nil {
				wb.Charts = append(wb.Charts, export.Picture{Name: id, Image: img})
			}
		}
	}
	return wb
}
