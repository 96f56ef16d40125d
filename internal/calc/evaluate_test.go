package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateOperands(t *testing.T) {
	cases := []struct {
		name      string
		prev, cur string
		op        Operator
		want      string
	}{
		{"add", "3", "4", OpAdd, "7"},
		{"subtract negative", "2", "5", OpSubtract, "-3"},
		{"multiply", "1.5", "4", OpMultiply, "6"},
		{"divide", "1", "4", OpDivide, "0.25"},
		{"float noise", "0.1", "0.2", OpAdd, "0.30000000000000004"},
		{"divide by zero", "5", "0", OpDivide, "Error"},
		{"divide zero by zero", "0", "0.0", OpDivide, "Error"},
		{"unparsable previous", "Error", "1", OpAdd, ""},
		{"unparsable current", "1", "1..2", OpAdd, ""},
		{"empty operand", "", "1", OpAdd, ""},
		{"trailing point", "5.", "1", OpAdd, "6"},
		{"large", "1000000000000", "1000000000000", OpMultiply, "1e+24"},
		{"nan previous", "NaN", "1", OpAdd, ""},
		{"nan current", "2", "NaN", OpMultiply, ""},
		{"infinity still parses", "Infinity", "1", OpAdd, "Infinity"},
		{"infinity minus infinity", "Infinity", "Infinity", OpSubtract, "NaN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, EvaluateOperands(tc.prev, tc.cur, tc.op))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{12, "12"},
		{-0.5, "-0.5"},
		{1e21, "1e+21"},
		{123456789012345680000, "123456789012345680000"},
		{1.5e-7, "1.5e-7"},
		{0.000001, "0.000001"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatNumber(tc.in), "FormatNumber(%v)", tc.in)
	}
}

func TestParseOperator(t *testing.T) {
	cases := map[string]Operator{
		"+": OpAdd,
		"-": OpSubtract,
		"−": OpSubtract,
		"*": OpMultiply,
		"×": OpMultiply,
		"/": OpDivide,
		"÷": OpDivide,
	}
	for in, want := range cases {
		got, ok := ParseOperator(in)
		require.True(t, ok, in)
		require.Equal(t, want, got, in)
	}

	_, ok := ParseOperator("%")
	require.False(t, ok)
	require.Equal(t, "÷", OpDivide.Symbol())
	require.Equal(t, "/", OpDivide.String())
}
