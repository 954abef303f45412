package uncertainty

import (
	"fmt"
	"strings"
)

// Precision is the number of digits printed after the decimal point for
// both the value and its uncertainty. Rounding to significant figures is
// left to the reader.
const Precision = 10

// Format renders "<value> ± <uncertainty> <unit>" in fixed-point notation.
// Surrounding whitespace is trimmed, so an empty unit leaves no trailing space.
func Format(value, uncertainty float64, unit string) string {
	s := fmt.Sprintf("%.*f ± %.*f %s", Precision, value, Precision, uncertainty, unit)
	return strings.TrimSpace(s)
}
