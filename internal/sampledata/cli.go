package sampledata

import "io"

// ShowHelp prints usage information for the results generator.
func ShowHelp(w io.Writer) {
	_, _ = io.WriteString(w, `Medaltable Results Generator
============================

Writes a synthetic results table (ResultID, Event, Athlete, Team,
Placement, Points) for trying out medaltable.

Usage:
  go run ./cmd/gen-results [options]

Options:
  -events int
        Number of events to stage (default 12)
  -teams int
        Number of teams (default 10)
  -athletes int
        Athletes per team (default 4)
  -entrants int
        Athletes drawn into each event (default 8)
  -dnf float
        Share of entrants that do not finish, 0..1 (default 0.05)
  -seed uint
        Random seed; the same seed writes the same table (default 1)
  -output string
        File to write (default: stdout)
  -help
        Show this help message

Examples:
  # Default table to stdout
  go run ./cmd/gen-results

  # A larger championship written next to the CLI's default source
  go run ./cmd/gen-results -events 40 -teams 16 -entrants 12 -output results.csv
`)
}
