// Package standings aggregates placement rows into medal and points
// standings.
//
// Every function here is pure: the result depends only on the arguments, so
// callers may compute several views concurrently over the same rows.
package standings

import (
	"cmp"
	"slices"
	"strings"

	"github.com/okian/medaltable/internal/domain/tabular"
)

// Column names read by the aggregator. Matching is case-sensitive.
const (
	ColumnPlacement = "Placement"
	ColumnPoints    = "Points"
)

// Placements that earn a medal.
const (
	placeGold   = 1
	placeSilver = 2
	placeBronze = 3
)

// Entry holds the aggregated totals for one group-key value.
// Podiums always equals Gold+Silver+Bronze.
type Entry struct {
	Name    string
	Gold    int
	Silver  int
	Bronze  int
	Podiums int
	Points  float64
}

// Aggregate groups rows by the trimmed value of groupKey and orders the
// resulting entries by mode. Rows with an empty group value are skipped.
// Entries that tie under mode keep the order in which their names were first
// seen.
func Aggregate(rows []tabular.Row, groupKey string, mode SortMode) []Entry {
	index := make(map[string]int)
	var entries []Entry

	for _, row := range rows {
		name := strings.TrimSpace(row.Get(groupKey))
		if name == "" {
			continue
		}

		i, ok := index[name]
		if !ok {
			i = len(entries)
			index[name] = i
			entries = append(entries, Entry{Name: name})
		}
		e := &entries[i]

		if placement, ok := placementOf(row.Get(ColumnPlacement)); ok {
			e.credit(placement)
		}
		points, _ := pointsOf(row.Get(ColumnPoints))
		e.Points += points
	}

	slices.SortStableFunc(entries, comparator(mode))
	return entries
}

func (e *Entry) credit(placement float64) {
	switch placement {
	case placeGold:
		e.Gold++
	case placeSilver:
		e.Silver++
	case placeBronze:
		e.Bronze++
	default:
		return
	}
	e.Podiums++
}

// comparator returns a descending ordering for mode. Unknown modes fall back
// to Points.
func comparator(mode SortMode) func(a, b Entry) int {
	switch mode {
	case Podiums:
		return func(a, b Entry) int {
			return cmp.Or(
				cmp.Compare(b.Podiums, a.Podiums),
				cmp.Compare(b.Points, a.Points),
			)
		}
	case MedalsFirst:
		return func(a, b Entry) int {
			return cmp.Or(
				cmp.Compare(b.Gold, a.Gold),
				cmp.Compare(b.Silver, a.Silver),
				cmp.Compare(b.Bronze, a.Bronze),
				cmp.Compare(b.Points, a.Points),
			)
		}
	default:
		return func(a, b Entry) int {
			return cmp.Compare(b.Points, a.Points)
		}
	}
}
