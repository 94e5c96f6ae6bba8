package render

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/okian/medaltable/internal/domain/model"
	"github.com/okian/medaltable/internal/domain/types"
)

type jsonRenderer struct {
	w io.Writer
}

func (r *jsonRenderer) Render(ctx context.Context, boards []model.Board) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	out := make([]model.Board, len(boards))
	for i, b := range boards {
		// Encode empty views as [] rather than null.
		if b.Podium == nil {
			b.Podium = []types.Entry{}
		}
		if b.Entries == nil {
			b.Entries = []types.Entry{}
		}
		out[i] = b
	}

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode boards: %w", err)
	}
	return nil
}
