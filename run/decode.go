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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/chart"
)

// Load reads a snapshot from a JSON file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads a snapshot from r.
func Decode(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read run: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON snapshot. Only a missing or non-object document is
// an error; inside the object every field is coerced to its type, with
// defaults for values that cannot be used.
func Parse(data []byte) (*Snapshot, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, ErrEmptyPayload
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected an object, got %s", ErrInvalidPayload, jsonKind(raw))
	}
	return normalize(obj), nil
}

func normalize(obj map[string]any) *Snapshot {
	s := &Snapshot{
		Query:         stringField(obj, "query", ""),
		TotalCost:     floatField(obj, "total_cost", 0),
		StoppedReason: stringField(obj, "stopped_reason", DefaultStoppedReason),
		FinalAnswer:   stringField(obj, "final_answer", ""),
	}

	rounds, _ := obj["rounds"].([]any)
	for _, item := range rounds {
		rd, ok := item.(map[string]any)
		if !ok {
			chart.Logger().Debug("skipping malformed round", "kind", jsonKind(item))
			continue
		}
		number := int(intField(rd, "round", 0))
		round := Round{
			Number:    number,
			RoundCost: floatField(rd, "round_cost", 0),
			Consensus: floatField(rd, "consensus", 0),
		}
		responses, _ := rd["responses"].([]any)
		for _, item := range responses {
			resp, ok := item.(map[string]any)
			if !ok {
				continue
			}
			r := normalizeResponse(resp, DefaultAgent, defaultRole)
			r.Round = int(intField(resp, "round", int64(number)))
			round.Responses = append(round.Responses, r)
		}
		s.Rounds = append(s.Rounds, round)
	}

	// absent counts are zero; present but unusable ones fall back to the
	// number of rounds
	s.RoundsCompleted = int(presentIntField(obj, "rounds_completed", int64(len(s.Rounds))))
	s.RoundsRequested = int(presentIntField(obj, "rounds_requested", int64(s.RoundsCompleted)))

	if judge, ok := obj["judge"].(map[string]any); ok {
		r := normalizeResponse(judge, DefaultJudgeAgent, defaultJudgeRole)
		s.Judge = &r
	}

	warnings, _ := obj["warnings"].([]any)
	for _, w := range warnings {
		s.Warnings = append(s.Warnings, toString(w))
	}
	return s
}

func normalizeResponse(m map[string]any, agent, role string) Response {
	return Response{
		Agent:        stringField(m, "agent", agent),
		Role:         stringField(m, "role", role),
		Provider:     stringField(m, "provider", DefaultProvider),
		Model:        stringField(m, "model", defaultModel),
		Confidence:   floatField(m, "confidence", 0),
		Cost:         floatField(m, "cost", 0),
		TokensInput:  intField(m, "tokens_input", 0),
		TokensOutput: intField(m, "tokens_output", 0),
		TokensTotal:  intField(m, "tokens_total", 0),
		Content:      stringField(m, "content", ""),
		IsError:      truthy(m["is_error"]),
	}
}

// stringField returns m[key] as a string. Missing keys and null give def.
func stringField(m map[string]any, key, def string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	return toString(v)
}

func toString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}

// floatField returns m[key] as a finite float. Numeric strings are
// accepted; anything else gives def.
func floatField(m map[string]any, key string, def float64) float64 {
	f, ok := toFloat(m[key])
	if !ok {
		return def
	}
	return f
}

// maxExactInt is the largest integer a float64 holds exactly.
const maxExactInt = 1 << 53

// intField is like floatField, truncating towards zero.
func intField(m map[string]any, key string, def int64) int64 {
	f, ok := toFloat(m[key])
	if !ok || math.Abs(f) > maxExactInt {
		return def
	}
	return int64(f)
}

// presentIntField is like intField, but gives 0 if key is absent and def
// only if the value is present but not a usable number.
func presentIntField(m map[string]any, key string, def int64) int64 {
	if _, ok := m[key]; !ok {
		return 0
	}
	return intField(m, key, def)
}

func toFloat(v any) (float64, bool) {
	var f float64
	var err error
	switch v := v.(type) {
	case json.Number:
		f, err = v.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
	case bool:
		if v {
			f = 1
		}
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func truthy(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case json.Number:
		f, err := v.Float64()
		return err == nil && f != 0
	case string:
		return v != ""
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	}
	return false
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	default:
		return "object"
	}
}
