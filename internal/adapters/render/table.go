package render

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/okian/medaltable/internal/domain/model"
	"github.com/okian/medaltable/internal/domain/types"
)

const (
	glyphGold   = "🥇"
	glyphSilver = "🥈"
	glyphBronze = "🥉"
	glyphPoints = "⭐"
	glyphMedals = "🏁"
	emptyName   = "—"
)

// podiumSlot places the ranked entry at index idx into a visual position.
type podiumSlot struct {
	idx   int
	glyph string
	label string
}

// Runners-up flank the winner.
var podiumSlots = []podiumSlot{
	{idx: 1, glyph: glyphSilver, label: "2nd"},
	{idx: 0, glyph: glyphGold, label: "1st"},
	{idx: 2, glyph: glyphBronze, label: "3rd"},
}

type tableRenderer struct {
	w io.Writer
}

func (r *tableRenderer) Render(ctx context.Context, boards []model.Board) error {
	for i, b := range boards {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			if _, err := io.WriteString(r.w, "\n"); err != nil {
				return err
			}
		}
		if err := r.board(b); err != nil {
			return fmt.Errorf("render %s: %w", b.View, err)
		}
	}
	return nil
}

func (r *tableRenderer) board(b model.Board) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s Medal Table\n", b.View)
	fmt.Fprintf(&sb, "sort: %s", b.Sort)
	if b.Search != "" {
		fmt.Fprintf(&sb, "  search: %q (%d of %d)", b.Search, len(b.Entries), b.Total)
	}
	sb.WriteString("\n\n")
	if _, err := io.WriteString(r.w, sb.String()); err != nil {
		return err
	}

	if err := r.podium(b.Podium); err != nil {
		return err
	}
	if _, err := io.WriteString(r.w, "\n"); err != nil {
		return err
	}
	if b.Empty() {
		_, err := io.WriteString(r.w, "No entries.\n")
		return err
	}
	return r.table(b.Entries)
}

func (r *tableRenderer) podium(top []types.Entry) error {
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	for _, slot := range podiumSlots {
		if slot.idx >= len(top) {
			fmt.Fprintf(tw, "%s %s\t%s\t%s 0\t%s 0 %s 0 %s 0\t\n",
				slot.glyph, slot.label, emptyName, glyphPoints, glyphGold, glyphSilver, glyphBronze)
			continue
		}
		podiumLine(tw, slot.glyph+" "+slot.label, top[slot.idx])
	}
	// Podiums wider than three continue in rank order.
	for i := len(podiumSlots); i < len(top); i++ {
		podiumLine(tw, "   "+ordinal(top[i].Rank), top[i])
	}
	return tw.Flush()
}

func podiumLine(w io.Writer, label string, e types.Entry) {
	fmt.Fprintf(w, "%s\t%s\t%s %s\t%s %d %s %d %s %d\t%s %d Medals\n",
		label, e.Name,
		glyphPoints, types.FormatPoints(e.Points),
		glyphGold, e.Gold, glyphSilver, e.Silver, glyphBronze, e.Bronze,
		glyphMedals, e.Podiums)
}

func (r *tableRenderer) table(entries []types.Entry) error {
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tName\tGold\tSilver\tBronze\tPodiums\tPoints")
	for i, e := range entries {
		name := e.Name
		if g := rowGlyph(i); g != "" {
			name += " " + g
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%s\n",
			e.Rank, name, e.Gold, e.Silver, e.Bronze, e.Podiums, types.FormatPoints(e.Points))
	}
	return tw.Flush()
}

func rowGlyph(i int) string {
	switch i {
	case 0:
		return glyphGold
	case 1:
		return glyphSilver
	case 2:
		return glyphBronze
	default:
		return ""
	}
}


func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}
