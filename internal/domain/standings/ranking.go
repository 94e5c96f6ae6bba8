package standings

import (
	"fmt"
	"strings"

	"github.com/okian/medaltable/internal/domain/types"
	"golang.org/x/text/cases"
)

// Ranking is an ordered view over aggregated entries. Position in the slice
// is the rank.
type Ranking []Entry

// NewRanking wraps entries already ordered by Aggregate.
func NewRanking(entries []Entry) Ranking {
	return Ranking(entries)
}

// Filter returns the entries whose name contains term, ignoring case.
// Spaces in term are significant. An empty term returns r unchanged. Order is
// preserved, so ranks are reassigned by position in the filtered view.
func (r Ranking) Filter(term string) Ranking {
	if term == "" {
		return r
	}
	// A Caser is stateful, so each call gets its own.
	fold := cases.Fold()
	needle := fold.String(term)

	out := make(Ranking, 0, len(r))
	for _, e := range r {
		if strings.Contains(fold.String(e.Name), needle) {
			out = append(out, e)
		}
	}
	return out
}

// TopN returns at most the first n entries.
func (r Ranking) TopN(n int) Ranking {
	if n <= 0 {
		return Ranking{}
	}
	if n > len(r) {
		n = len(r)
	}
	return r[:n:n]
}

// Entries returns the ranking with 1-indexed ranks assigned by position.
func (r Ranking) Entries() []types.Entry {
	out := make([]types.Entry, len(r))
	for i, e := range r {
		out[i] = ranked(i, e)
	}
	return out
}

// Rank returns the ranked entry for an exact name.
func (r Ranking) Rank(name string) (types.Entry, error) {
	for i, e := range r {
		if e.Name == name {
			return ranked(i, e), nil
		}
	}
	return types.Entry{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

func ranked(i int, e Entry) types.Entry {
	return types.Entry{
		Rank:    i + 1,
		Name:    e.Name,
		Gold:    e.Gold,
		Silver:  e.Silver,
		Bronze:  e.Bronze,
		Podiums: e.Podiums,
		Points:  e.Points,
	}
}
