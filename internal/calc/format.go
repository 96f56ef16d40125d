package calc

import (
	"math/big"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// groupSample is formatted once per locale to learn its grouping.
const groupSample = 1234567

// Formatter renders operands for display with locale digit grouping. The
// zero value groups digits the en-US way.
type Formatter struct {
	sep       string
	primary   int
	secondary int
}

// NewFormatter returns a Formatter grouping digits for tag.
func NewFormatter(tag language.Tag) Formatter {
	return groupingFrom(message.NewPrinter(tag).Sprint(number.Decimal(groupSample)))
}

// groupingFrom reads separator and group sizes off a formatted groupSample.
// Locales that do not print ASCII digits fall back to en-US grouping.
func groupingFrom(sample string) Formatter {
	i := strings.IndexFunc(sample, isNotDigit)
	if i < 0 {
		if sample != "1234567" {
			return Formatter{}
		}
		return Formatter{primary: -1}
	}
	j := strings.IndexFunc(sample[i:], isDigit)
	if i == 0 || j <= 0 {
		return Formatter{}
	}
	sep := sample[i : i+j]
	groups := strings.Split(sample, sep)
	if strings.Join(groups, "") != "1234567" {
		return Formatter{}
	}
	f := Formatter{sep: sep, primary: len(groups[len(groups)-1])}
	f.secondary = f.primary
	if len(groups) >= 3 {
		f.secondary = len(groups[len(groups)-2])
	}
	return f
}

var defaultFormatter = Formatter{sep: ",", primary: 3, secondary: 3}

// FormatOperand formats op with en-US grouping. The second result is
// false when op is absent and nothing should be shown.
func FormatOperand(op *string) (string, bool) {
	return defaultFormatter.Operand(op)
}

// Operand groups the integer part of op and re-appends any decimal part
// unchanged. The sign and digits of op are kept exactly. Operands whose
// integer part is not a number, such as the divide-by-zero sentinel, are
// returned as-is.
func (f Formatter) Operand(op *string) (string, bool) {
	if op == nil {
		return "", false
	}
	integer, decimal, hasDecimal := strings.Cut(*op, ".")
	sign := ""
	if rest, ok := strings.CutPrefix(integer, "-"); ok {
		sign, integer = "-", rest
	}
	digits, ok := integerDigits(integer)
	if !ok {
		return *op, true
	}
	grouped := sign + f.group(digits)
	if !hasDecimal {
		return grouped, true
	}
	return grouped + "." + decimal, true
}

// integerDigits returns the decimal digits of a non-negative integer
// written either plainly or in exponent form ("1e+24").
func integerDigits(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	if strings.IndexFunc(s, isNotDigit) < 0 {
		if trimmed := strings.TrimLeft(s, "0"); trimmed != "" {
			return trimmed, true
		}
		return "0", true
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok || !r.IsInt() || r.Sign() < 0 {
		return "", false
	}
	return r.Num().String(), true
}

func (f Formatter) group(digits string) string {
	if f.primary == 0 {
		f = defaultFormatter
	}
	if f.primary < 0 || len(digits) <= f.primary {
		return digits
	}
	head, tail := digits[:len(digits)-f.primary], digits[len(digits)-f.primary:]
	parts := []string{tail}
	for len(head) > f.secondary {
		parts = append(parts, head[len(head)-f.secondary:])
		head = head[:len(head)-f.secondary]
	}
	parts = append(parts, head)
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, f.sep)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isNotDigit(r rune) bool { return !isDigit(r) }
