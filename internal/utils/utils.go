package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatDecimal renders f the way the fixture consumers expect a price:
// the shortest decimal that parses back to f, always with a fractional part
// ("2.0", "0.07", "10.0"). Magnitudes below 1e-4 or from 1e16 up use an
// exponent with a fractional mantissa ("1.0e-05").
func FormatDecimal(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		if !strings.Contains(mantissa, ".") {
			mantissa += ".0"
		}
		return mantissa + "e" + exp
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
