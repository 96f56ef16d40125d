package calc

// State is the calculator's complete state. A nil operand is absent; an
// empty string is a present operand that will not parse.
type State struct {
	Current   *string
	Previous  *string
	Operation *Operator
	Overwrite bool
}

// Computation records one evaluation performed during a transition.
type Computation struct {
	Previous string
	Current  string
	Op       Operator
	Result   string
}

// Reduce applies a to s and returns the next state. It never fails:
// transitions that make no sense return s unchanged.
func Reduce(s State, a Action) State {
	next, _ := step(s, a)
	return next
}

// step is Reduce plus the computation it performed, if any.
func step(s State, a Action) (State, *Computation) {
	switch act := a.(type) {
	case AddDigit:
		return addDigit(s, act.Digit), nil
	case ChooseOperation:
		return chooseOperation(s, act.Op)
	case Clear:
		s.Current = nil
		return s, nil
	case AllClear:
		return State{}, nil
	case Evaluate:
		return applyEvaluate(s)
	}
	return s, nil
}

func addDigit(s State, digit string) State {
	if s.Overwrite {
		s.Current = strPtr(digit)
		s.Overwrite = false
		return s
	}
	if digit == "0" && s.Current != nil && *s.Current == "0" {
		return s
	}
	cur := ""
	if s.Current != nil {
		cur = *s.Current
	}
	s.Current = strPtr(cur + digit)
	return s
}

func chooseOperation(s State, op Operator) (State, *Computation) {
	switch {
	case s.Current == nil && s.Previous == nil:
		return s, nil
	case s.Current == nil:
		s.Operation = opPtr(op)
		return s, nil
	case s.Previous == nil:
		s.Previous = s.Current
		s.Operation = opPtr(op)
		s.Current = nil
		return s, nil
	}

	// A previous operand without an operator cannot be produced by Reduce;
	// such a state is left alone.
	if s.Operation == nil {
		return s, nil
	}
	comp := compute(s)
	s.Previous = strPtr(comp.Result)
	s.Operation = opPtr(op)
	s.Current = nil
	return s, comp
}

func applyEvaluate(s State) (State, *Computation) {
	if s.Operation == nil || s.Current == nil || s.Previous == nil {
		return s, nil
	}
	comp := compute(s)
	return State{
		Current:   strPtr(comp.Result),
		Overwrite: true,
	}, comp
}

func compute(s State) *Computation {
	return &Computation{
		Previous: *s.Previous,
		Current:  *s.Current,
		Op:       *s.Operation,
		Result:   EvaluateOperands(*s.Previous, *s.Current, *s.Operation),
	}
}

func strPtr(s string) *string { return &s }

func opPtr(o Operator) *Operator { return &o }
