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

// Package run reads the result snapshot of a debate run and derives the
// series shown on the analytics dashboard.
//
// Snapshots are decoded leniently: numbers may be given as JSON numbers or
// numeric strings, and missing or malformed fields fall back to defaults
// instead of failing the whole document.
package run

// Response is one agent contribution, either within a round or as the
// final judgement.
type Response struct {
	Round        int     `json:"round"`
	Agent        string  `json:"agent"`
	Role         string  `json:"role"`
	Provider     string  `json:"provider"`
	Model        string  `json:"model"`
	Confidence   float64 `json:"confidence"` // in [0, 1]
	Cost         float64 `json:"cost"`       // USD
	TokensInput  int64   `json:"tokens_input"`
	TokensOutput int64   `json:"tokens_output"`
	TokensTotal  int64   `json:"tokens_total"`
	Content      string  `json:"content"`
	IsError      bool    `json:"is_error"`
}

// Round groups the responses of one debate round.
type Round struct {
	Number    int        `json:"round"`
	Responses []Response `json:"responses"`
	RoundCost float64    `json:"round_cost"`
	Consensus float64    `json:"consensus"` // in [0, 1]
}

// Snapshot is the complete result of a run.
type Snapshot struct {
	Query           string    `json:"query"`
	RoundsRequested int       `json:"rounds_requested"`
	RoundsCompleted int       `json:"rounds_completed"`
	Rounds          []Round   `json:"rounds"`
	Judge           *Response `json:"judge"`
	TotalCost       float64   `json:"total_cost"`
	StoppedReason   string    `json:"stopped_reason"`
	FinalAnswer     string    `json:"final_answer"`
	Warnings        []string  `json:"warnings"`
}

// Responses returns all round responses in order, followed by the judge
// response if there is one.
func (s *Snapshot) Responses() []Response {
	var out []Response
	for _, rd := range s.Rounds {
		out = append(out, rd.Responses...)
	}
	if s.Judge != nil {
		out = append(out, *s.Judge)
	}
	return out
}

// Defaults for fields missing from a snapshot.
const (
	DefaultAgent         = "Unknown Agent"
	DefaultJudgeAgent    = "Synthesizer"
	DefaultProvider      = "Unknown"
	DefaultStoppedReason = "No status available."

	defaultRole      = "unknown"
	defaultJudgeRole = "judge"
	defaultModel     = "unknown"
)
