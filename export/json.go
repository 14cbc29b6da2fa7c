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
	"encoding/json"
	"io"

	"seehuhn.de/go/chart/run"
)

// WriteJSON writes the snapshot as indented JSON, in the field layout
// Parse reads. Missing lists are written as empty arrays.
func WriteJSON(w io.Writer, s *run.Snapshot) error {
	out := *s
	out.Rounds = append([]run.Round{}, s.Rounds...)
	for i := range out.Rounds {
		if out.Rounds[i].Responses == nil {
			out.Rounds[i].Responses = []run.Response{}
		}
	}
	if out.Warnings == nil {
		out.Warnings = []string{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(&out)
}
