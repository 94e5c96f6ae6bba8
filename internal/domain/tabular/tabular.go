// Package tabular parses and writes the lightly-quoted comma separated
// results format.
package tabular

import (
	"strings"
)

// Constants for the line grammar.
const (
	separator = ','
	quote     = '"'
)

// minLines is the header plus at least one data line.
const minLines = 2

// Row maps a column name to its trimmed string value.
type Row map[string]string

// Get returns the value for column, or "" when the column is absent.
func (r Row) Get(column string) string {
	return r[column]
}

// Parse converts raw text into row records. Input with no data lines yields
// an empty (nil) result rather than an error.
func Parse(text string) []Row {
	lines := splitLines(text)
	if len(lines) < minLines {
		return nil
	}

	header := trimAll(SplitLine(lines[0]))
	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := SplitLine(line)
		row := make(Row, len(header))
		for i, name := range header {
			value := ""
			if i < len(values) {
				value = strings.TrimSpace(values[i])
			}
			row[name] = value
		}
		rows = append(rows, row)
	}
	return rows
}

// Header returns the trimmed column names of text, or nil when text has no
// non-blank line.
func Header(text string) []string {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil
	}
	return trimAll(SplitLine(lines[0]))
}

// SplitLine splits a single line into raw (untrimmed) fields.
//
// A double quote toggles quoted mode and is not emitted. A comma separates
// fields only outside quotes. Two consecutive quotes inside quoted mode emit
// one literal quote. The last field is always emitted, so an empty line
// yields one empty field.
func SplitLine(line string) []string {
	var (
		fields   []string
		cur      strings.Builder
		inQuotes bool
	)
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == quote && inQuotes && i+1 < len(line) && line[i+1] == quote:
			cur.WriteByte(quote)
			i++
		case ch == quote:
			inQuotes = !inQuotes
		case ch == separator && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	return append(fields, cur.String())
}

// splitLines drops carriage returns, splits on newlines, and discards blank
// lines.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r", "")
	raw := strings.Split(text, "\n")
	lines := raw[:0]
	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func trimAll(values []string) []string {
	for i, v := range values {
		values[i] = strings.TrimSpace(v)
	}
	return values
}
