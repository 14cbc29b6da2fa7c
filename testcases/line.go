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

import "math"

var lineCases = []TestCase{
	{
		Name:   "cost_two_rounds",
		Kind:   Line,
		Labels: []string{"1", "2"},
		Values: []float64{0.001, 0.002},
		Color:  costColor,
	},
	{
		Name:   "consensus_ten_rounds",
		Kind:   Line,
		Labels: rounds(10),
		Values: []float64{40, 55, 50, 62, 70, 68, 75, 81, 85, 90},
		Color:  consensusColor,
	},
	{
		Name:   "cost_five_rounds",
		Kind:   Line,
		Labels: rounds(5),
		Values: []float64{0.0042, 0.0031, 0.0035, 0.0012, 0.0008},
		Color:  costColor,
	},
	{
		Name:   "single_point",
		Kind:   Line,
		Labels: []string{"1"},
		Values: []float64{0.5},
		Color:  costColor,
	},
	{
		Name:   "all_zero",
		Kind:   Line,
		Labels: rounds(3),
		Values: []float64{0, 0, 0},
		Color:  consensusColor,
	},
	{
		Name:  "empty",
		Kind:  Line,
		Color: costColor,
	},
	{
		Name:   "non_finite",
		Kind:   Line,
		Labels: rounds(4),
		Values: []float64{1, math.NaN(), math.Inf(1), 3},
		Color:  costColor,
	},
	{
		Name:   "missing_labels",
		Kind:   Line,
		Labels: []string{"1"},
		Values: []float64{20, 40, 60},
		Color:  consensusColor,
	},
	{
		Name:   "tiny_surface",
		Kind:   Line,
		Labels: rounds(3),
		Values: []float64{1, 2, 3},
		Color:  costColor,
		Width:  40,
		Height: 30,
	},
}
