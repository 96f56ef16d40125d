package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// DivideByZero is the display value produced when the divisor is zero.
const DivideByZero = "Error"

// EvaluateOperands computes prev op cur. It returns "" when either operand
// does not parse or is NaN, and DivideByZero when dividing by exactly zero.
func EvaluateOperands(prev, cur string, op Operator) string {
	a, ok := parseOperand(prev)
	if !ok {
		return ""
	}
	b, ok := parseOperand(cur)
	if !ok {
		return ""
	}

	var out float64
	switch op {
	case OpAdd:
		out = a + b
	case OpSubtract:
		out = a - b
	case OpMultiply:
		out = a * b
	case OpDivide:
		if b == 0 {
			return DivideByZero
		}
		out = a / b
	default:
		return ""
	}
	return FormatNumber(out)
}

func parseOperand(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// FormatNumber renders f the way a JavaScript Number prints: the shortest
// round-trip digits, in exponent form outside [1e-6, 1e21).
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
