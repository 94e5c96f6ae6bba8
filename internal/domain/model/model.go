// Package model contains domain models passed between layers.
package model

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/okian/medaltable/internal/domain/tabular"
	"github.com/okian/medaltable/internal/domain/types"
)

// Dataset is one load of the results table. Rows are shared read-only by
// every view computed from it.
type Dataset struct {
	ID       uuid.UUID     // assigned per load
	Source   string        // path or URL the text came from
	LoadedAt time.Time     // when the load finished
	Columns  []string      // trimmed header names, in file order
	Rows     []tabular.Row // one record per data line
}

// HasColumn reports whether name is one of the dataset's header columns.
// Matching is case-sensitive, like the aggregator's.
func (d *Dataset) HasColumn(name string) bool {
	return slices.Contains(d.Columns, name)
}

// Board is one rendered standings view.
type Board struct {
	View    string        `json:"view"`   // group key the rows were grouped by
	Sort    string        `json:"sort"`   // sort mode name
	Search  string        `json:"search"` // filter term, empty when unfiltered
	Total   int           `json:"total"`  // entries before filtering
	Skipped int           `json:"skipped"`
	Podium  []types.Entry `json:"podium"`
	Entries []types.Entry `json:"entries"`
}

// Empty reports whether the board has nothing to show.
func (b Board) Empty() bool {
	return len(b.Entries) == 0
}
