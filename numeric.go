package listex

import (
	"math"
	"strconv"
	"strings"
)

// ExtractNumeric returns text with everything except digits and decimal
// points removed, preserving original order. Returns an empty string when
// the input contains neither. The function is idempotent.
func ExtractNumeric(text string) string {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseCoordinate parses a latitude or longitude string. The second return
// value is false when the input is empty or does not parse to a finite
// number; NaN and infinities are never returned.
func ParseCoordinate(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
