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

// Package config handles loading of the dashboard configuration.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/chart"
)

// Surface IDs of the four dashboard charts.
const (
	SurfaceCost      = "chart-cost"
	SurfaceConsensus = "chart-consensus"
	SurfaceTokens    = "chart-tokens"
	SurfaceProvider  = "chart-provider"
)

// SurfaceIDs lists the dashboard surfaces in display order.
var SurfaceIDs = []string{SurfaceCost, SurfaceConsensus, SurfaceTokens, SurfaceProvider}

// ErrUnknownSurface is returned for surface IDs that are not part of the
// dashboard.
var ErrUnknownSurface = errors.New("unknown surface")

// Config is the root configuration structure.
type Config struct {
	Surfaces map[string]SurfaceConfig `yaml:"surfaces"`
	Theme    ThemeConfig              `yaml:"theme"`
	Output   OutputConfig             `yaml:"output"`
}

// SurfaceConfig holds the laid-out size of one chart, in logical units.
type SurfaceConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Hidden bool `yaml:"hidden"`
}

// ThemeConfig holds colours as hex strings and font sizes in logical
// units.
type ThemeConfig struct {
	Background     string   `yaml:"background"`
	Grid           string   `yaml:"grid"`
	AxisText       string   `yaml:"axis_text"`
	LabelText      string   `yaml:"label_text"`
	Hole           string   `yaml:"hole"`
	CostColor      string   `yaml:"cost_color"`
	ConsensusColor string   `yaml:"consensus_color"`
	BarPalette     []string `yaml:"bar_palette"`
	PiePalette     []string `yaml:"pie_palette"`

	AxisFontSize   float64 `yaml:"axis_font_size"`
	LabelFontSize  float64 `yaml:"label_font_size"`
	BarFontSize    float64 `yaml:"bar_font_size"`
	LegendFontSize float64 `yaml:"legend_font_size"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	Workbook string `yaml:"workbook"`
}

// Page and series colours, which are not part of chart.Theme.
var (
	defaultBackground     = chart.Hex("#111827")
	defaultCostColor      = chart.Hex("#6366f1")
	defaultConsensusColor = chart.Hex("#10b981")
)

// Default returns the default configuration.
func Default() *Config {
	cfg := &Config{
		Surfaces: map[string]SurfaceConfig{
			SurfaceCost:      {Width: 520, Height: 220},
			SurfaceConsensus: {Width: 520, Height: 220},
			SurfaceTokens:    {Width: 520, Height: 220},
			SurfaceProvider:  {Width: 520, Height: 220},
		},
		Output: OutputConfig{
			Dir:      "./charts",
			Workbook: "run.xlsx",
		},
	}
	cfg.Theme = ThemeFrom(chart.DefaultTheme, defaultBackground, defaultCostColor, defaultConsensusColor)
	return cfg
}

// Load loads configuration from a file. Values missing from the file keep
// their defaults; a surface listed in the file replaces its default entry
// as a whole.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads config from path, or returns the default if path is
// empty or does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes the configuration to a file, creating its directory.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// InitConfig creates a default config file if it doesn't exist.
func InitConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return Default().Save(path)
}

// Validate checks surface names and sizes. Colours are not checked, since
// invalid colours fall back to black.
func (c *Config) Validate() error {
	for id, s := range c.Surfaces {
		if !slices.Contains(SurfaceIDs, id) {
			return fmt.Errorf("surfaces: %q: %w", id, ErrUnknownSurface)
		}
		if s.Width < 0 || s.Height < 0 {
			return fmt.Errorf("surfaces: %q: negative size %dx%d", id, s.Width, s.Height)
		}
	}
	return nil
}

// Surface returns the configuration of surface id.
func (c *Config) Surface(id string) (SurfaceConfig, error) {
	s, ok := c.Surfaces[id]
	if !ok {
		return SurfaceConfig{}, fmt.Errorf("%q: %w", id, ErrUnknownSurface)
	}
	return s, nil
}

// Page builds the dashboard page. Surfaces missing from the configuration
// are left out, so the matching charts are skipped.
func (c *Config) Page() *chart.Page {
	bg := chart.Hex(c.Theme.Background)
	page := chart.NewPage()
	for _, id := range SurfaceIDs {
		sc, err := c.Surface(id)
		if err != nil {
			continue
		}
		s := chart.NewSurface(id, sc.Width, sc.Height, bg)
		s.Hidden = sc.Hidden
		page.Add(s)
	}
	return page
}

// ChartTheme converts the theme section. Missing font sizes and empty
// palettes are taken from chart.DefaultTheme.
func (c *Config) ChartTheme() chart.Theme {
	t := c.Theme
	th := chart.DefaultTheme
	th.Grid = chart.Hex(t.Grid)
	th.AxisText = chart.Hex(t.AxisText)
	th.LabelText = chart.Hex(t.LabelText)
	th.Hole = chart.Hex(t.Hole)
	if len(t.BarPalette) > 0 {
		th.BarPalette = chart.ParsePalette(t.BarPalette...)
	}
	if len(t.PiePalette) > 0 {
		th.PiePalette = chart.ParsePalette(t.PiePalette...)
	}
	setSize(&th.AxisFontSize, t.AxisFontSize)
	setSize(&th.LabelFontSize, t.LabelFontSize)
	setSize(&th.BarFontSize, t.BarFontSize)
	setSize(&th.LegendFontSize, t.LegendFontSize)
	return th
}

// ThemeFrom converts a chart theme and the page and series colours into
// their configuration form.
func ThemeFrom(th chart.Theme, bg, cost, consensus color.NRGBA) ThemeConfig {
	return ThemeConfig{
		Background:     chart.HexString(bg),
		Grid:           chart.HexString(th.Grid),
		AxisText:       chart.HexString(th.AxisText),
		LabelText:      chart.HexString(th.LabelText),
		Hole:           chart.HexString(th.Hole),
		CostColor:      chart.HexString(cost),
		ConsensusColor: chart.HexString(consensus),
		BarPalette:     th.BarPalette.Strings(),
		PiePalette:     th.PiePalette.Strings(),
		AxisFontSize:   th.AxisFontSize,
		LabelFontSize:  th.LabelFontSize,
		BarFontSize:    th.BarFontSize,
		LegendFontSize: th.LegendFontSize,
	}
}

// SeriesColors returns the line colours of the cost and consensus charts.
func (c *Config) SeriesColors() (cost, consensus color.NRGBA) {
	return chart.Hex(c.Theme.CostColor), chart.Hex(c.Theme.ConsensusColor)
}

func setSize(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}
