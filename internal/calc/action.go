package calc

import "strings"

// Operator is one of the four binary operations.
type Operator int

const (
	OpAdd Operator = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
)

// String returns the arithmetic code of the operator (+ - * /).
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	}
	return ""
}

// Symbol returns the glyph shown on the keypad and display.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	}
	return ""
}

// ParseOperator accepts either the arithmetic code or the display glyph.
func ParseOperator(s string) (Operator, bool) {
	switch strings.TrimSpace(s) {
	case "+":
		return OpAdd, true
	case "-", "−":
		return OpSubtract, true
	case "*", "×", "x":
		return OpMultiply, true
	case "/", "÷":
		return OpDivide, true
	}
	return 0, false
}

// Action is a single user input consumed by Reduce.
type Action interface {
	isAction()
	String() string
}

// AddDigit appends a digit ("0"-"9") or "." to the current operand.
type AddDigit struct{ Digit string }

// ChooseOperation selects the pending operator, folding a complete
// expression into the previous operand first.
type ChooseOperation struct{ Op Operator }

// Clear drops the current operand only.
type Clear struct{}

// AllClear resets the state.
type AllClear struct{}

// Evaluate computes previous op current.
type Evaluate struct{}

func (AddDigit) isAction()        {}
func (ChooseOperation) isAction() {}
func (Clear) isAction()           {}
func (AllClear) isAction()        {}
func (Evaluate) isAction()        {}

func (a AddDigit) String() string        { return "add_digit(" + a.Digit + ")" }
func (a ChooseOperation) String() string { return "choose_operation(" + a.Op.String() + ")" }
func (Clear) String() string             { return "clear" }
func (AllClear) String() string          { return "all_clear" }
func (Evaluate) String() string          { return "evaluate" }
