package domain

import (
	"math"
	"strconv"
	"strings"
)

// Coerce converts a raw rating or count to a decimal number. Empty,
// malformed, hexadecimal and non-finite input all read as 0.
func Coerce(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" || isHex(s) {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// isHex reports whether s uses the hexadecimal float syntax ParseFloat
// would otherwise accept.
func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
