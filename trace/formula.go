package trace

import (
	"math"
	"strconv"
)

// FormatValue renders a label or weight for display: "∞" and "-∞" for the
// sentinels, otherwise the shortest decimal that round-trips (3, 2.5, -1).
func FormatValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// operand renders v for the middle of a formula, parenthesising negatives.
func operand(v float64) string {
	if v < 0 {
		return "(" + FormatValue(v) + ")"
	}

	return FormatValue(v)
}

// Formula renders the evaluation of one candidate arc:
//
//	λ(u) + w(u,v) = 3 + 4 = 7
func Formula(from, to string, fromLabel, weight, total float64) string {
	return "λ(" + from + ") + w(" + from + "," + to + ") = " +
		operand(fromLabel) + " + " + operand(weight) + " = " + FormatValue(total)
}
