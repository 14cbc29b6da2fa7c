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
	"errors"
	"math"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func loadSample(t *testing.T) *Snapshot {
	t.Helper()
	s, err := Load(filepath.Join("testdata", "run.json"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestLoad(t *testing.T) {
	s := loadSample(t)

	if s.RoundsRequested != 3 || s.RoundsCompleted != 2 || len(s.Rounds) != 2 {
		t.Fatalf("rounds: requested %d, completed %d, got %d",
			s.RoundsRequested, s.RoundsCompleted, len(s.Rounds))
	}
	r := s.Rounds[0].Responses[1]
	if r.Confidence != 0.6 || r.Cost != 0.00073 {
		t.Errorf("numeric strings not decoded: %+v", r)
	}

	// fields missing from the second response of round 2
	r = s.Rounds[1].Responses[1]
	if r.Round != 2 {
		t.Errorf("round defaults to %d, want 2", r.Round)
	}
	if r.Role != "unknown" || r.Model != "unknown" {
		t.Errorf("defaults: role %q, model %q", r.Role, r.Model)
	}
	if r.TokensTotal != 2300 {
		t.Errorf("tokens_total = %d, want 2300", r.TokensTotal)
	}

	if s.Judge == nil || s.Judge.Agent != "Synthesizer" || s.Judge.TokensTotal != 3700 {
		t.Errorf("judge: %+v", s.Judge)
	}
	if !slices.Equal(s.Warnings, []string{"Unknown model: foo"}) {
		t.Errorf("warnings %q", s.Warnings)
	}
}

func TestParseDefaults(t *testing.T) {
	s, err := Parse([]byte(`{"rounds": [{"responses": [{}, 7, null]}, "junk"], "judge": "none"}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Rounds) != 1 || len(s.Rounds[0].Responses) != 1 {
		t.Fatalf("got %d rounds", len(s.Rounds))
	}
	r := s.Rounds[0].Responses[0]
	if r.Agent != DefaultAgent || r.Provider != DefaultProvider {
		t.Errorf("defaults: agent %q, provider %q", r.Agent, r.Provider)
	}
	if s.Judge != nil {
		t.Errorf("non-object judge was kept")
	}
	if s.RoundsCompleted != 0 || s.RoundsRequested != 0 {
		t.Errorf("rounds completed %d, requested %d, want 0 for absent keys",
			s.RoundsCompleted, s.RoundsRequested)
	}
	if s.StoppedReason != DefaultStoppedReason {
		t.Errorf("stopped reason %q", s.StoppedReason)
	}
}

func TestParseRoundCounts(t *testing.T) {
	for _, tc := range []struct {
		in                   string
		completed, requested int
	}{
		{`{"rounds": [{}, {}]}`, 0, 0},
		{`{"rounds": [{}, {}], "rounds_completed": null}`, 2, 0},
		{`{"rounds": [{}, {}], "rounds_completed": "x", "rounds_requested": null}`, 2, 2},
		{`{"rounds": [{}], "rounds_completed": 1, "rounds_requested": "4"}`, 1, 4},
		{`{"rounds_requested": 3}`, 0, 3},
	} {
		s, err := Parse([]byte(tc.in))
		if err != nil {
			t.Fatal(err)
		}
		if s.RoundsCompleted != tc.completed || s.RoundsRequested != tc.requested {
			t.Errorf("%s: completed %d, requested %d, want %d, %d", tc.in,
				s.RoundsCompleted, s.RoundsRequested, tc.completed, tc.requested)
		}
	}
}

func TestParseLenientNumbers(t *testing.T) {
	s, err := Parse([]byte(`{
		"total_cost": "abc",
		"rounds_completed": "2.9",
		"rounds": [{"round": 1, "round_cost": null, "consensus": true,
			"responses": [{"cost": "NaN", "tokens_total": 1e300, "is_error": 1}]}]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if s.TotalCost != 0 {
		t.Errorf("total_cost = %g", s.TotalCost)
	}
	if s.RoundsCompleted != 2 {
		t.Errorf("rounds_completed = %d, want 2", s.RoundsCompleted)
	}
	rd := s.Rounds[0]
	if rd.RoundCost != 0 || rd.Consensus != 1 {
		t.Errorf("round: %+v", rd)
	}
	r := rd.Responses[0]
	if r.Cost != 0 || r.TokensTotal != 0 || !r.IsError {
		t.Errorf("response: %+v", r)
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want error
	}{
		{"", ErrEmptyPayload},
		{"  \n", ErrEmptyPayload},
		{"null", ErrEmptyPayload},
		{"[1, 2]", ErrInvalidPayload},
		{`"run"`, ErrInvalidPayload},
		{`{"query": `, ErrInvalidPayload},
	} {
		_, err := Parse([]byte(tc.in))
		if !errors.Is(err, tc.want) {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, err, tc.want)
		}
	}

	if _, err := Decode(strings.NewReader("{}")); err != nil {
		t.Errorf("empty object: %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("missing file gave no error")
	}
}

func TestDerive(t *testing.T) {
	d := Derive(loadSample(t))

	if !slices.Equal(d.Cost.Labels, []string{"1", "2"}) ||
		!slices.Equal(d.Cost.Values, []float64{0.00123, 0.0021}) {
		t.Errorf("cost series %+v", d.Cost)
	}
	if !slices.Equal(d.Consensus.Values, []float64{40, 80}) {
		t.Errorf("consensus series %+v", d.Consensus)
	}

	wantAgents := []string{"Contributor 1", "Contributor 2", "Synthesizer"}
	if !slices.Equal(d.Tokens.Labels, wantAgents) {
		t.Errorf("agents %q, want %q", d.Tokens.Labels, wantAgents)
	}
	if !slices.Equal(d.Tokens.Values, []float64{3300, 3700, 3700}) {
		t.Errorf("tokens %v", d.Tokens.Values)
	}

	wantProviders := []string{"OpenAI", "Anthropic", "Google"}
	if !slices.Equal(d.Providers.Labels, wantProviders) {
		t.Errorf("providers %q, want %q", d.Providers.Labels, wantProviders)
	}
	wantCost := []float64{0.0015, 0.00183, 0.0009}
	for i, v := range d.Providers.Values {
		if math.Abs(v-wantCost[i]) > 1e-12 {
			t.Errorf("provider %s cost %g, want %g", d.Providers.Labels[i], v, wantCost[i])
		}
	}
}

func TestDeriveEmpty(t *testing.T) {
	d := Derive(&Snapshot{})
	if d.Cost.Len() != 0 || d.Consensus.Len() != 0 || d.Tokens.Len() != 0 || d.Providers.Len() != 0 {
		t.Errorf("series of empty run: %+v", d)
	}
}

func TestConsensusPercent(t *testing.T) {
	for _, tc := range []struct{ in, want float64 }{
		{0, 0},
		{0.8, 80},
		{0.666, 67},
		{1, 100},
	} {
		if got := ConsensusPercent(tc.in); got != tc.want {
			t.Errorf("ConsensusPercent(%g) = %g, want %g", tc.in, got, tc.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := loadSample(t)
	sum := Summarize(s)

	if sum.TotalTokens != 1200+1400+2100+2300+3700 {
		t.Errorf("total tokens %d", sum.TotalTokens)
	}
	if sum.Agents != 3 || sum.Responses != 5 {
		t.Errorf("agents %d, responses %d", sum.Agents, sum.Responses)
	}
	wantConf := (0.7 + 0.6 + 0.8 + 0.9 + 0.85) / 5 * 100
	if math.Abs(sum.AvgConfidence-wantConf) > 1e-9 {
		t.Errorf("avg confidence %g, want %g", sum.AvgConfidence, wantConf)
	}

	want := []Metric{
		{"Total Cost", "$0.0042"},
		{"Total Tokens", "10,700"},
		{"Avg Confidence", "77.0%"},
		{"Agents", "3"},
	}
	if got := sum.Metrics(); !slices.Equal(got, want) {
		t.Errorf("metrics %v, want %v", got, want)
	}

	empty := Summarize(&Snapshot{}).Metrics()
	if empty[2].Value != "0%" || empty[0].Value != "$0.0000" {
		t.Errorf("empty metrics %v", empty)
	}
}

func TestRoundLines(t *testing.T) {
	s := loadSample(t)
	want := []string{
		"Round 1 | cost $0.00123 | consensus 40%",
		"Round 2 | cost $0.00210 | consensus 80%",
	}
	for i, rd := range s.Rounds {
		if got := RoundLine(rd); got != want[i] {
			t.Errorf("got %q, want %q", got, want[i])
		}
	}
	if got := TotalLine(s); got != "Run total $0.004230" {
		t.Errorf("total line %q", got)
	}
}
