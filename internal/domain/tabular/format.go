package tabular

import (
	"fmt"
	"strings"
)

// Format serializes rows in header order, one line per row. Values holding a
// separator or a quote are quoted with embedded quotes doubled, which Parse
// reads back unchanged.
func Format(header []string, rows []Row) (string, error) {
	if len(header) == 0 {
		return "", ErrEmptyHeader
	}

	var b strings.Builder
	if err := writeLine(&b, header); err != nil {
		return "", fmt.Errorf("header: %w", err)
	}

	values := make([]string, len(header))
	for i, row := range rows {
		for j, name := range header {
			values[j] = row.Get(name)
		}
		if err := writeLine(&b, values); err != nil {
			return "", fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return b.String(), nil
}

func writeLine(b *strings.Builder, values []string) error {
	// A lone empty field would otherwise be a blank line, which Parse drops.
	if len(values) == 1 && values[0] == "" {
		b.WriteString(`""` + "\n")
		return nil
	}
	for i, v := range values {
		if strings.ContainsAny(v, "\r\n") {
			return fmt.Errorf("%w: %q", ErrMultilineValue, v)
		}
		if i > 0 {
			b.WriteByte(separator)
		}
		b.WriteString(quoteField(v))
	}
	b.WriteByte('\n')
	return nil
}

func quoteField(v string) string {
	if !strings.ContainsAny(v, `,"`) {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
