package currency

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateExpression(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"2+3", 5},
		{"10*5", 50},
		{"100/4", 25},
		{"(10+5)*2", 30},
		{"5×3", 15},
		{"5х3", 15}, // Cyrillic х
		{"10:2", 5},
		{"10÷2", 5},
		{"2^3", 8},
		{"-5+10", 5},
		{"10 000+5", 10005},
		{"1,5*2", 3},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := EvaluateExpression(tc.in)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestEvaluateExpressionRejects(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"5/0",
		"10/(5-5)",
		"import os",
		"os.system('rm')",
		"__import__",
		"a+b",
		"2+",
		"(2+3",
		"2+3)",
		"1e400*1e400",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			_, err := EvaluateExpression(in)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrUnsafeExpression)
		})
	}
}
