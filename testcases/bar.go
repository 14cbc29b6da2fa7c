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

package testcases

var barCases = []TestCase{
	{
		Name: "empty",
		Kind: Bar,
	},
	{
		Name:   "agents",
		Kind:   Bar,
		Labels: []string{"Analyst", "Skeptic", "Optimist", "Synthesizer"},
		Values: []float64{5120, 4380, 4710, 2950},
	},
	{
		Name:   "all_zero",
		Kind:   Bar,
		Labels: []string{"Analyst", "Skeptic"},
		Values: []float64{0, 0},
	},
	{
		Name:   "long_labels",
		Kind:   Bar,
		Labels: []string{"Devil's Advocate", "Domain Expert (medicine)", "Moderator"},
		Values: []float64{1200, 800, 300},
	},
	{
		Name:   "palette_wrap",
		Kind:   Bar,
		Labels: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"},
		Values: []float64{9, 8, 7, 6, 5, 4, 3, 2, 1},
	},
	{
		Name:   "below_one",
		Kind:   Bar,
		Labels: []string{"x", "y"},
		Values: []float64{0.25, 0.5},
	},
}
