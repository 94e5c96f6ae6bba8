// Package render writes standings boards as an aligned text report or JSON.
package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/okian/medaltable/internal/domain/model"
)

// Output formats accepted by New.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Renderer writes boards to its destination.
type Renderer interface {
	Render(ctx context.Context, boards []model.Board) error
}

// New returns the renderer for format writing to w.
func New(format string, w io.Writer) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatTable, "":
		return &tableRenderer{w: w}, nil
	case FormatJSON:
		return &jsonRenderer{w: w}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
