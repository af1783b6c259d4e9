package domain

import (
	"regexp"
	"strconv"
)

// numberPattern matches an unsigned integer or decimal literal whose first
// digit does not follow a decimal point. Group 2 is the literal itself.
var numberPattern = regexp.MustCompile(`(^|[^.0-9])([0-9]+(\.[0-9]*)?)`)

// ExtractNumber returns the first numeric literal of line, or 0 when there is none.
func ExtractNumber(line string) float64 {
	m := numberPattern.FindStringSubmatch(line)
	if m == nil {
		return 0
	}
	// Only range errors are possible here; the value is then ±Inf.
	v, _ := strconv.ParseFloat(m[2], 64)
	return v
}
