package solver

import (
	"strconv"
	"strings"
)

// parseFloatLenient parses a decimal number, returning ok=false on any
// malformed input instead of propagating strconv's error type.
func parseFloatLenient(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// trimTrailingZeros renders a float with no unnecessary trailing zeros or
// decimal point, e.g. 0.50 -> "0.5", 5.0 -> "5".
func trimTrailingZeros(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
