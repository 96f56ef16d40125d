package calc

// Machine owns the single calculator State and applies actions to it one
// at a time. It keeps a bounded tape of the computations it performed.
type Machine struct {
	state   State
	tape    []Computation
	tapeMax int
}

// NewMachine returns a Machine in the initial state keeping at most
// tapeSize computations (0 disables the tape).
func NewMachine(tapeSize int) *Machine {
	if tapeSize < 0 {
		tapeSize = 0
	}
	return &Machine{tapeMax: tapeSize}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Dispatch applies a and returns the computation it performed, if any.
func (m *Machine) Dispatch(a Action) *Computation {
	next, comp := step(m.state, a)
	m.state = next
	if comp != nil && m.tapeMax > 0 {
		m.tape = append(m.tape, *comp)
		if len(m.tape) > m.tapeMax {
			m.tape = m.tape[len(m.tape)-m.tapeMax:]
		}
	}
	return comp
}

// Tape returns recorded computations, oldest first.
func (m *Machine) Tape() []Computation {
	out := make([]Computation, len(m.tape))
	copy(out, m.tape)
	return out
}

// String renders the computation as "prev op cur = result".
func (c Computation) String() string {
	return c.Previous + " " + c.Op.Symbol() + " " + c.Current + " = " + c.Result
}
