package calc

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func digits(s State, ds string) State {
	for _, r := range ds {
		s = Reduce(s, AddDigit{Digit: string(r)})
	}
	return s
}

func run(actions ...Action) State {
	var s State
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

func requireOperand(t *testing.T, want string, got *string) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, want, *got)
}

func TestAllClearResetsAnyState(t *testing.T) {
	states := []State{
		{},
		digits(State{}, "12"),
		run(AddDigit{"3"}, ChooseOperation{OpAdd}, AddDigit{"4"}),
		run(AddDigit{"5"}, ChooseOperation{OpDivide}, AddDigit{"0"}, Evaluate{}),
	}
	for i, s := range states {
		require.Equal(t, State{}, Reduce(s, AllClear{}), "state %d", i)
	}
}

func TestClearKeepsPreviousAndOperation(t *testing.T) {
	s := run(AddDigit{"8"}, ChooseOperation{OpMultiply}, AddDigit{"2"})
	got := Reduce(s, Clear{})

	require.Nil(t, got.Current)
	requireOperand(t, "8", got.Previous)
	require.NotNil(t, got.Operation)
	require.Equal(t, OpMultiply, *got.Operation)
}

func TestAdditionMatchesFloatSum(t *testing.T) {
	cases := []struct{ a, b string }{
		{"1", "2"},
		{"0.1", "0.2"},
		{"123.5", "0.25"},
		{"999999", "1"},
		{"7", "0"},
	}
	for _, tc := range cases {
		s := digits(State{}, tc.a)
		s = Reduce(s, ChooseOperation{OpAdd})
		s = digits(s, tc.b)
		s = Reduce(s, Evaluate{})

		fa, _ := strconv.ParseFloat(tc.a, 64)
		fb, _ := strconv.ParseFloat(tc.b, 64)
		requireOperand(t, FormatNumber(fa+fb), s.Current)
	}
}

func TestDivideByZeroStoresSentinel(t *testing.T) {
	s := run(AddDigit{"5"}, ChooseOperation{OpDivide}, AddDigit{"0"}, Evaluate{})
	requireOperand(t, "Error", s.Current)
	require.Nil(t, s.Previous)
	require.Nil(t, s.Operation)
	require.True(t, s.Overwrite)
}

func TestLeadingDoubleZeroIgnored(t *testing.T) {
	s := digits(State{}, "0")
	require.Equal(t, s, Reduce(s, AddDigit{"0"}))
}

func TestDigitAfterEvaluateReplaces(t *testing.T) {
	s := run(AddDigit{"6"}, ChooseOperation{OpMultiply}, AddDigit{"2"}, Evaluate{})
	requireOperand(t, "12", s.Current)

	s = Reduce(s, AddDigit{"5"})
	requireOperand(t, "5", s.Current)
	require.False(t, s.Overwrite)

	s = Reduce(s, AddDigit{"1"})
	requireOperand(t, "51", s.Current)
}

func TestChainedOperationsFold(t *testing.T) {
	s := run(AddDigit{"3"}, ChooseOperation{OpAdd}, AddDigit{"4"}, ChooseOperation{OpSubtract})
	requireOperand(t, "7", s.Previous)
	require.Nil(t, s.Current)
	require.Equal(t, OpSubtract, *s.Operation)

	s = Reduce(Reduce(s, AddDigit{"2"}), Evaluate{})
	requireOperand(t, "5", s.Current)
}

func TestChooseOperationCases(t *testing.T) {
	require.Equal(t, State{}, Reduce(State{}, ChooseOperation{OpAdd}))

	s := run(AddDigit{"9"}, ChooseOperation{OpAdd}, ChooseOperation{OpDivide})
	requireOperand(t, "9", s.Previous)
	require.Nil(t, s.Current)
	require.Equal(t, OpDivide, *s.Operation)
}

func TestEvaluateNeedsAllParts(t *testing.T) {
	partial := []State{
		{},
		digits(State{}, "4"),
		run(AddDigit{"4"}, ChooseOperation{OpAdd}),
	}
	for _, s := range partial {
		require.Equal(t, s, Reduce(s, Evaluate{}))
	}
}

func TestRepeatedDecimalPointKept(t *testing.T) {
	s := digits(State{}, "1..2")
	requireOperand(t, "1..2", s.Current)

	s = Reduce(s, ChooseOperation{OpAdd})
	s = Reduce(digits(s, "3"), Evaluate{})
	requireOperand(t, "", s.Current)
}

func TestOperatorAfterResultStartsNewExpression(t *testing.T) {
	s := run(AddDigit{"2"}, ChooseOperation{OpAdd}, AddDigit{"2"}, Evaluate{}, ChooseOperation{OpMultiply}, AddDigit{"3"}, Evaluate{})
	requireOperand(t, "12", s.Current)
}

func TestNegativeFractionResultKeepsSign(t *testing.T) {
	s := run(AddDigit{"0"}, AddDigit{"."}, AddDigit{"5"}, ChooseOperation{OpSubtract}, AddDigit{"1"}, Evaluate{})
	requireOperand(t, "-0.5", s.Current)

	got, ok := FormatOperand(s.Current)
	require.True(t, ok)
	require.Equal(t, "-0.5", got)
}
