package standings

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Number coerces a cell to a float64 the way a lenient spreadsheet reader
// would. Surrounding space is ignored and an empty cell is zero. Decimal and
// exponent forms, signed "Infinity" and 0x/0o/0b prefixed integers are
// accepted. Anything else yields NaN.
func Number(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if base := radixPrefix(s); base != 0 {
		n, err := strconv.ParseUint(s[2:], base, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return math.NaN()
		}
		if err != nil {
			return math.Inf(1)
		}
		return float64(n)
	}

	// ParseFloat also knows "inf", "nan" and underscores; none of those are
	// numbers here.
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(s, "_") {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

// radixPrefix returns the base named by a 0x, 0o or 0b prefix, or 0.
func radixPrefix(s string) int {
	if len(s) < 3 || s[0] != '0' {
		return 0
	}
	switch s[1] {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 0
}

// placementOf returns the coerced placement and whether it is a number.
func placementOf(s string) (float64, bool) {
	p := Number(s)
	return p, !math.IsNaN(p)
}

// pointsOf returns the coerced points, or zero when the value is not a number.
func pointsOf(s string) (float64, bool) {
	p := Number(s)
	if math.IsNaN(p) {
		return 0, false
	}
	return p, true
}
