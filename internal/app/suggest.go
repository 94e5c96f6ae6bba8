package service

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

// closestColumn returns the column nearest to key by edit distance after case
// folding. Columns more than half of key's length away are not suggested.
func closestColumn(key string, columns []string) (string, bool) {
	fold := cases.Fold()
	folded := fold.String(key)
	limit := utf8.RuneCountInString(folded) / 2

	best, bestDist := "", limit+1
	for _, c := range columns {
		if d := levenshtein.ComputeDistance(folded, fold.String(c)); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best != ""
}
