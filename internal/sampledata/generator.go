// Package sampledata generates synthetic competition results in the tabular
// format read by medaltable.
package sampledata

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"

	"github.com/okian/medaltable/internal/domain/standings"
	"github.com/okian/medaltable/internal/domain/tabular"
)

// Generated columns.
const (
	ColumnResultID = "ResultID"
	ColumnEvent    = "Event"
	ColumnAthlete  = "Athlete"
	ColumnTeam     = "Team"
)

// PlacementDNF marks an entrant that did not finish.
const PlacementDNF = "DNF"

// Points awarded by finishing place; places past the table score zero.
var pointsTable = []int{10, 8, 6, 5, 4, 3, 2, 1}

// Header returns the generated column names in file order.
func Header() []string {
	return []string{
		ColumnResultID, ColumnEvent, ColumnAthlete, ColumnTeam,
		standings.ColumnPlacement, standings.ColumnPoints,
	}
}

type athlete struct {
	name string
	team string
}

// Generate builds one results table for cfg. The same Config, seed
// included, always yields the same table.
func Generate(ctx context.Context, cfg Config) ([]string, []tabular.Row, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	src := rand.NewChaCha8(seedBytes(cfg.Seed))
	rng := rand.New(src)

	roster := make([]athlete, 0, cfg.Teams*cfg.AthletesPerTeam)
	for t := 0; t < cfg.Teams; t++ {
		for a := 0; a < cfg.AthletesPerTeam; a++ {
			roster = append(roster, athlete{
				name: athleteName(len(roster)),
				team: teamName(t),
			})
		}
	}

	rows := make([]tabular.Row, 0, cfg.Events*cfg.EntrantsPerEvent)
	for e := 0; e < cfg.Events; e++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, fmt.Errorf("generate event %d: %w", e+1, err)
		}

		// The draw order is the finishing order.
		field := rng.Perm(len(roster))[:cfg.EntrantsPerEvent]
		place := 0
		for _, idx := range field {
			id, err := uuid.NewRandomFromReader(src)
			if err != nil {
				return nil, nil, fmt.Errorf("generate result id: %w", err)
			}

			placement, points := PlacementDNF, 0
			if rng.Float64() >= cfg.DNFRate {
				place++
				placement, points = strconv.Itoa(place), pointsFor(place)
			}

			rows = append(rows, tabular.Row{
				ColumnResultID:            id.String(),
				ColumnEvent:               eventName(e),
				ColumnAthlete:             roster[idx].name,
				ColumnTeam:                roster[idx].team,
				standings.ColumnPlacement: placement,
				standings.ColumnPoints:    strconv.Itoa(points),
			})
		}
	}
	return Header(), rows, nil
}

// Write generates a table for cfg and writes it to w.
func Write(ctx context.Context, cfg Config, w io.Writer) error {
	header, rows, err := Generate(ctx, cfg)
	if err != nil {
		return err
	}
	text, err := tabular.Format(header, rows)
	if err != nil {
		return fmt.Errorf("format results: %w", err)
	}
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

func pointsFor(place int) int {
	if place < 1 || place > len(pointsTable) {
		return 0
	}
	return pointsTable[place-1]
}

func seedBytes(seed uint64) [32]byte {
	var b [32]byte
	binary.LittleEndian.PutUint64(b[:], seed)
	return b
}
