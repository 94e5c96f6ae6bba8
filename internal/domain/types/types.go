// Package types contains common types used across the application
package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Spellings of non-finite points, both in reports and in JSON.
const (
	pointsPosInf = "Infinity"
	pointsNegInf = "-Infinity"
	pointsNaN    = "NaN"
)

// Entry represents a ranked standings row
type Entry struct {
	Rank    int     `json:"rank"`
	Name    string  `json:"name"`
	Gold    int     `json:"gold"`
	Silver  int     `json:"silver"`
	Bronze  int     `json:"bronze"`
	Podiums int     `json:"podiums"`
	Points  float64 `json:"points"`
}

// entryFields has Entry's fields without its JSON methods.
type entryFields Entry

// MarshalJSON writes non-finite points as a string, since JSON numbers
// cannot hold them.
func (e Entry) MarshalJSON() ([]byte, error) {
	if !isNonFinite(e.Points) {
		return json.Marshal(entryFields(e))
	}
	return json.Marshal(struct {
		entryFields
		Points string `json:"points"`
	}{entryFields(e), FormatPoints(e.Points)})
}

// UnmarshalJSON accepts points as a number or as one of the strings written
// by MarshalJSON.
func (e *Entry) UnmarshalJSON(data []byte) error {
	aux := struct {
		*entryFields
		Points json.RawMessage `json:"points"`
	}{entryFields: (*entryFields)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	e.Points = 0
	if len(aux.Points) == 0 || string(aux.Points) == "null" {
		return nil
	}
	if aux.Points[0] != '"' {
		return json.Unmarshal(aux.Points, &e.Points)
	}

	var s string
	if err := json.Unmarshal(aux.Points, &s); err != nil {
		return err
	}
	switch s {
	case pointsPosInf:
		e.Points = math.Inf(1)
	case pointsNegInf:
		e.Points = math.Inf(-1)
	case pointsNaN:
		e.Points = math.NaN()
	default:
		return fmt.Errorf("invalid points %q", s)
	}
	return nil
}

// FormatPoints prints the shortest decimal that round-trips, so whole
// numbers carry no fraction.
func FormatPoints(p float64) string {
	switch {
	case math.IsInf(p, 1):
		return pointsPosInf
	case math.IsInf(p, -1):
		return pointsNegInf
	case math.IsNaN(p):
		return pointsNaN
	}
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func isNonFinite(p float64) bool {
	return math.IsInf(p, 0) || math.IsNaN(p)
}
