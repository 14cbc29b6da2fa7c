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

package export

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/run"
)

const (
	summarySheet = "Summary"
	chartsSheet  = "Charts"

	// default row height of a worksheet, in pixels
	rowPixels = 20
)

// Picture is a rendered chart to be placed in a workbook.
type Picture struct {
	Name  string
	Image image.Image // device pixels, PixelRatio per logical unit
}

// Workbook collects the data of one run for export to an xlsx file.
type Workbook struct {
	ID         string
	Query      string
	Summary    run.Summary
	Series     run.Derived
	RoundLines []string
	TotalLine  string
	Charts     []Picture
}

// Save writes the workbook to path, creating the parent directory if
// needed.
func (wb *Workbook) Save(path string) error {
	f, err := wb.build()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// Write writes the workbook in xlsx format to w.
func (wb *Workbook) Write(w io.Writer) error {
	f, err := wb.build()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// build lays out the workbook: a summary sheet, one sheet per series and,
// if there are any pictures, a sheet with the charts.
func (wb *Workbook) build() (*excelize.File, error) {
	f := excelize.NewFile()
	ok := false
	defer func() {
		if !ok {
			f.Close()
		}
	}()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := wb.writeSummary(f, bold); err != nil {
		return nil, fmt.Errorf("sheet %q: %w", summarySheet, err)
	}

	for _, t := range Tables(wb.Series) {
		if _, err := f.NewSheet(t.Sheet); err != nil {
			return nil, err
		}
		if err := writeTable(f, t, bold); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", t.Sheet, err)
		}
	}

	if len(wb.Charts) > 0 {
		if _, err := f.NewSheet(chartsSheet); err != nil {
			return nil, err
		}
		if err := wb.writeCharts(f); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", chartsSheet, err)
		}
	}

	f.SetActiveSheet(0)
	ok = true
	return f, nil
}

func (wb *Workbook) writeSummary(f *excelize.File, bold int) error {
	s := wb.Summary
	rows := [][]any{
		{"Report", wb.ID},
		{"Query", wb.Query},
		{},
	}
	for _, m := range s.Metrics() {
		rows = append(rows, []any{m.Label, m.Value})
	}
	rows = append(rows,
		[]any{"Rounds", fmt.Sprintf("%d / %d", s.RoundsCompleted, s.RoundsRequested)},
		[]any{"Stopped", s.StoppedReason},
		[]any{},
	)
	for _, line := range wb.RoundLines {
		rows = append(rows, []any{line})
	}
	if wb.TotalLine != "" {
		rows = append(rows, []any{wb.TotalLine})
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
		if len(row) > 1 {
			if err := f.SetCellStyle(summarySheet, cell, cell, bold); err != nil {
				return err
			}
		}
	}
	return f.SetColWidth(summarySheet, "A", "A", 18)
}

func writeTable(f *excelize.File, t Table, bold int) error {
	if err := f.SetSheetRow(t.Sheet, "A1", &[]any{t.Header[0], t.Header[1]}); err != nil {
		return err
	}
	if err := f.SetCellStyle(t.Sheet, "A1", "B1", bold); err != nil {
		return err
	}
	for i, v := range t.Series.Values {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		var val any = v
		if math.IsNaN(v) || math.IsInf(v, 0) {
			val = nil
		}
		if err := f.SetSheetRow(t.Sheet, cell, &[]any{t.label(i), val}); err != nil {
			return err
		}
	}
	return f.SetColWidth(t.Sheet, "A", "B", 16)
}

// writeCharts places the pictures below each other in column A, at their
// logical size.
func (wb *Workbook) writeCharts(f *excelize.File) error {
	row := 1
	for _, pic := range wb.Charts {
		if pic.Image == nil {
			continue
		}
		buf := &bytes.Buffer{}
		if err := WritePNG(buf, pic.Image); err != nil {
			return fmt.Errorf("%s: %w", pic.Name, err)
		}

		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		err = f.AddPictureFromBytes(chartsSheet, cell, &excelize.Picture{
			Extension: ".png",
			File:      buf.Bytes(),
			Format: &excelize.GraphicOptions{
				AltText: pic.Name,
				ScaleX:  1.0 / chart.PixelRatio,
				ScaleY:  1.0 / chart.PixelRatio,
			},
		})
		if err != nil {
			return fmt.Errorf("%s: %w", pic.Name, err)
		}

		h := pic.Image.Bounds().Dy() / chart.PixelRatio
		row += (h+rowPixels-1)/rowPixels + 1
	}
	return nil
}
