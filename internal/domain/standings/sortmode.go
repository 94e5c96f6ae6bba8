package standings

import (
	"fmt"
	"strings"
)

// SortMode selects the ordering policy of a ranking.
type SortMode int

// Supported ordering policies.
const (
	// Points orders by points only.
	Points SortMode = iota
	// Podiums orders by podium count, then points.
	Podiums
	// MedalsFirst orders like a medal table: gold, silver, bronze, then points.
	MedalsFirst
)

// String returns the configuration name of the mode.
func (m SortMode) String() string {
	switch m {
	case Points:
		return "points"
	case Podiums:
		return "podiums"
	case MedalsFirst:
		return "medals"
	default:
		return fmt.Sprintf("SortMode(%d)", int(m))
	}
}

// ParseSortMode parses a mode name, ignoring case and surrounding space.
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "points":
		return Points, nil
	case "podiums":
		return Podiums, nil
	case "medals", "medalsfirst", "medals_first":
		return MedalsFirst, nil
	default:
		return Points, fmt.Errorf("%w: %q", ErrUnknownSortMode, s)
	}
}
