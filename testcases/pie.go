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

var pieCases = []TestCase{
	{
		Name:   "single_provider",
		Kind:   Pie,
		Labels: []string{"openai", "google", "anthropic"},
		Values: []float64{10, 0, 0},
	},
	{
		Name:   "providers",
		Kind:   Pie,
		Labels: []string{"openai", "anthropic", "google", "mistral"},
		Values: []float64{0.0123, 0.0087, 0.0041, 0.0012},
	},
	{
		Name:   "all_zero",
		Kind:   Pie,
		Labels: []string{"openai", "google"},
		Values: []float64{0, 0},
	},
	{
		Name: "empty",
		Kind: Pie,
	},
	{
		Name:   "palette_wrap",
		Kind:   Pie,
		Labels: []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8"},
		Values: []float64{1, 1, 1, 1, 1, 1, 1, 1},
	},
	{
		Name:   "negative_value",
		Kind:   Pie,
		Labels: []string{"openai", "refund"},
		Values: []float64{0.02, -0.01},
	},
}
