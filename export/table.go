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
	"fmt"

	"seehuhn.de/go/chart/run"
)

// Table is one derived series of a run together with its column headers.
type Table struct {
	Name   string // short name, used on the command line
	Sheet  string // worksheet name
	Header [2]string
	Series run.Series
}

// Tables returns the series of d in dashboard order.
func Tables(d run.Derived) []Table {
	return []Table{
		{"cost", "Cost", [2]string{"Round", "Cost (USD)"}, d.Cost},
		{"consensus", "Consensus", [2]string{"Round", "Consensus (%)"}, d.Consensus},
		{"tokens", "Tokens", [2]string{"Agent", "Tokens"}, d.Tokens},
		{"providers", "Providers", [2]string{"Provider", "Cost (USD)"}, d.Providers},
	}
}

// TableByName returns the table with the given short name.
func TableByName(d run.Derived, name string) (Table, error) {
	for _, t := range Tables(d) {
		if t.Name == name {
			return t, nil
		}
	}
	return Table{}, fmt.Errorf("%q: %w", name, ErrNoSeries)
}

// label returns the i-th label of s, or "" if there is none.
func (t Table) label(i int) string {
	if i < len(t.Series.Labels) {
		return t.Series.Labels[i]
	}
	return ""
}
