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

package run

import (
	"math"
	"strconv"
)

// Series is a list of values with index-aligned labels.
type Series struct {
	Labels []string
	Values []float64
}

// Len returns the number of values.
func (s Series) Len() int { return len(s.Values) }

// Derived holds the four dashboard series of a run.
type Derived struct {
	Cost      Series // USD per round, labelled by round number
	Consensus Series // integer percent per round
	Tokens    Series // total tokens per agent
	Providers Series // USD per provider
}

// Derive computes the dashboard series. Agents and providers appear in
// the order in which they first occur among the round responses, followed
// by the judge.
func Derive(s *Snapshot) Derived {
	var d Derived
	for _, rd := range s.Rounds {
		label := strconv.Itoa(rd.Number)
		d.Cost.Labels = append(d.Cost.Labels, label)
		d.Cost.Values = append(d.Cost.Values, rd.RoundCost)
		d.Consensus.Labels = append(d.Consensus.Labels, label)
		d.Consensus.Values = append(d.Consensus.Values, ConsensusPercent(rd.Consensus))
	}

	tokens := newAccumulator()
	providers := newAccumulator()
	for _, r := range s.Responses() {
		agent := r.Agent
		if agent == "" {
			agent = "Unknown"
		}
		provider := r.Provider
		if provider == "" {
			provider = DefaultProvider
		}
		tokens.add(agent, float64(r.TokensTotal))
		providers.add(provider, r.Cost)
	}
	d.Tokens = tokens.series()
	d.Providers = providers.series()
	return d
}

// ConsensusPercent converts a consensus fraction to whole percent.
func ConsensusPercent(c float64) float64 {
	return math.Round(c * 100)
}

// accumulator sums values per key, keeping keys in insertion order.
type accumulator struct {
	index map[string]int
	s     Series
}

func newAccumulator() *accumulator {
	return &accumulator{index: make(map[string]int)}
}

func (a *accumulator) add(key string, v float64) {
	i, ok := a.index[key]
	if !ok {
		i = len(a.s.Labels)
		a.index[key] = i
		a.s.Labels = append(a.s.Labels, key)
		a.s.Values = append(a.s.Values, 0)
	}
	a.s.Values[i] += v
}

func (a *accumulator) series() Series {
	return a.s
}
