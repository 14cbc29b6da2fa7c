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
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// CSVDialect specifies the CSV format variant.
type CSVDialect string

const (
	// DialectStandard uses RFC 4180 compliant CSV.
	DialectStandard CSVDialect = "standard"

	// DialectTSV uses tab-separated values instead of comma.
	DialectTSV CSVDialect = "tsv"
)

// CSVConfig specifies options for CSV export.
type CSVConfig struct {
	// Dialect specifies the CSV format variant.
	// Default: DialectStandard
	Dialect CSVDialect

	// IncludeHeader writes column headers as the first row.
	// Default: true
	IncludeHeader bool

	// Precision is the number of decimal places for values. A negative
	// precision uses the shortest exact representation.
	// Default: 6
	Precision int

	// NAString is written for non-finite values.
	// Default: "NA"
	NAString string
}

// DefaultCSVConfig returns a CSVConfig with the default settings.
func DefaultCSVConfig() *CSVConfig {
	return &CSVConfig{
		Dialect:       DialectStandard,
		IncludeHeader: true,
		Precision:     6,
		NAString:      "NA",
	}
}

// WriteCSV writes the label/value pairs of t, one row per value. If cfg is
// nil, DefaultCSVConfig() is used.
func WriteCSV(w io.Writer, t Table, cfg *CSVConfig) error {
	if cfg == nil {
		cfg = DefaultCSVConfig()
	}

	cw := csv.NewWriter(w)
	if cfg.Dialect == DialectTSV {
		cw.Comma = '\t'
	}

	if cfg.IncludeHeader {
		if err := cw.Write(t.Header[:]); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	for i, v := range t.Series.Values {
		if err := cw.Write([]string{t.label(i), cfg.formatValue(v)}); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func (cfg *CSVConfig) formatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return cfg.NAString
	}
	return strconv.FormatFloat(v, 'f', cfg.Precision, 64)
}
