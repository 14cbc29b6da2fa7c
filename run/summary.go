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
	"fmt"

	"seehuhn.de/go/chart"
)

// Summary holds the headline metrics of a run.
type Summary struct {
	TotalCost       float64
	TotalTokens     int64
	AvgConfidence   float64 // percent; zero without responses
	Responses       int
	Agents          int // distinct agent names
	RoundsCompleted int
	RoundsRequested int
	StoppedReason   string
}

// Summarize computes the summary metrics of s. The judge response counts
// like any other response.
func Summarize(s *Snapshot) Summary {
	sum := Summary{
		TotalCost:       s.TotalCost,
		RoundsCompleted: s.RoundsCompleted,
		RoundsRequested: s.RoundsRequested,
		StoppedReason:   s.StoppedReason,
	}

	all := s.Responses()
	agents := make(map[string]struct{})
	var conf float64
	for _, r := range all {
		sum.TotalTokens += r.TokensTotal
		conf += r.Confidence
		agents[r.Agent] = struct{}{}
	}
	sum.Responses = len(all)
	sum.Agents = len(agents)
	if len(all) > 0 {
		sum.AvgConfidence = conf / float64(len(all)) * 100
	}
	return sum
}

// Metric is one labelled, formatted value of a summary.
type Metric struct {
	Label string
	Value string
}

// Metrics returns the summary cards in display order.
func (s Summary) Metrics() []Metric {
	conf := "0%"
	if s.Responses > 0 {
		conf = chart.FormatPercent(s.AvgConfidence, 1)
	}
	return []Metric{
		{"Total Cost", chart.FormatUSD(s.TotalCost, 4)},
		{"Total Tokens", chart.FormatThousands(s.TotalTokens)},
		{"Avg Confidence", conf},
		{"Agents", fmt.Sprint(s.Agents)},
	}
}

// RoundLine describes the cost and consensus of one round, for example
// "Round 2 | cost $0.00123 | consensus 80%".
func RoundLine(rd Round) string {
	return fmt.Sprintf("Round %d | cost %s | consensus %s",
		rd.Number, chart.FormatUSD(rd.RoundCost, 5),
		chart.FormatPercent(ConsensusPercent(rd.Consensus), 0))
}

// TotalLine gives the total cost of a run with six decimals.
func TotalLine(s *Snapshot) string {
	return "Run total " + chart.FormatUSD(s.TotalCost, 6)
}
