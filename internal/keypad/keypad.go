// Package keypad describes the calculator's button grid and maps button
// labels to calculator actions.
package keypad

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/jaskcalc/internal/calc"
)

// Kind groups buttons for styling.
type Kind int

const (
	KindDigit Kind = iota
	KindOperator
	KindControl
	KindEquals
)

// Button is one keypad cell.
type Button struct {
	Label  string
	Span   int
	Kind   Kind
	Action calc.Action
}

// Columns is the width of the grid in unit cells.
const Columns = 4

// Layout is the grid, row by row. Each row's spans sum to Columns.
var Layout = [][]Button{
	{control("AC", 2, calc.AllClear{}), control("C", 1, calc.Clear{}), operator(calc.OpDivide)},
	{digit("1"), digit("2"), digit("3"), operator(calc.OpMultiply)},
	{digit("4"), digit("5"), digit("6"), operator(calc.OpAdd)},
	{digit("7"), digit("8"), digit("9"), operator(calc.OpSubtract)},
	{digit("."), digit("0"), {Label: "=", Span: 2, Kind: KindEquals, Action: calc.Evaluate{}}},
}

func digit(d string) Button {
	return Button{Label: d, Span: 1, Kind: KindDigit, Action: calc.AddDigit{Digit: d}}
}

func operator(op calc.Operator) Button {
	return Button{Label: op.Symbol(), Span: 1, Kind: KindOperator, Action: calc.ChooseOperation{Op: op}}
}

func control(label string, span int, a calc.Action) Button {
	return Button{Label: label, Span: span, Kind: KindControl, Action: a}
}

// Rows is the number of rows in Layout.
func Rows() int { return len(Layout) }

// At returns the button covering unit cell (col, row).
func At(col, row int) (Button, int, bool) {
	if row < 0 || row >= len(Layout) || col < 0 {
		return Button{}, 0, false
	}
	start := 0
	for i, b := range Layout[row] {
		if col < start+b.Span {
			return b, i, true
		}
		start += b.Span
	}
	return Button{}, 0, false
}

// StartColumn returns the unit column where button idx of row begins.
func StartColumn(row, idx int) int {
	col := 0
	for i := 0; i < idx && i < len(Layout[row]); i++ {
		col += Layout[row][i].Span
	}
	return col
}

// UnknownLabelError reports a label that names no button.
type UnknownLabelError struct {
	Label      string
	Suggestion string
}

func (e *UnknownLabelError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("unknown key %q", e.Label)
	}
	return fmt.Sprintf("unknown key %q (did you mean %q?)", e.Label, e.Suggestion)
}

// aliases accepts ASCII spellings of the operator glyphs.
var aliases = map[string]string{
	"-":  calc.OpSubtract.Symbol(),
	"*":  calc.OpMultiply.Symbol(),
	"x":  calc.OpMultiply.Symbol(),
	"/":  calc.OpDivide.Symbol(),
	"ac": "AC",
	"c":  "C",
}

// Lookup finds the button for a label. Unknown labels return an
// *UnknownLabelError carrying the closest known label.
func Lookup(label string) (Button, error) {
	label = strings.TrimSpace(label)
	if alias, ok := aliases[strings.ToLower(label)]; ok {
		label = alias
	}
	for _, row := range Layout {
		for _, b := range row {
			if b.Label == label {
				return b, nil
			}
		}
	}
	return Button{}, &UnknownLabelError{Label: label, Suggestion: suggest(label)}
}

// Labels returns every button label in layout order.
func Labels() []string {
	var out []string
	for _, row := range Layout {
		for _, b := range row {
			out = append(out, b.Label)
		}
	}
	return out
}

func suggest(label string) string {
	type candidate struct {
		label string
		dist  int
	}
	var cands []candidate
	for _, l := range Labels() {
		cands = append(cands, candidate{l, levenshtein.ComputeDistance(strings.ToUpper(label), strings.ToUpper(l))})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })
	if len(cands) == 0 || cands[0].dist > 2 || cands[0].dist >= len([]rune(label)) {
		return ""
	}
	return cands[0].label
}
