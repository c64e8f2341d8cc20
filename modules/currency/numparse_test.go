package currency

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1000", "1000"},
		{"10 000", "10000"},
		{"10 982", "10982"},
		{"10,50", "10.50"},
		{"10,5", "10.5"},
		{"10,000", "10000"},
		{"10,982", "10982"},
		{"1.000,50", "1000.50"},
		{"1,000.50", "1000.50"},
		{"1,000,000", "1000000"},
		{"1.000.000", "1000000"},
		{"3.14", "3.14"},
		{"1 234 567", "1234567"},
		{"1.234.567,89", "1234567.89"},
		{"1,234,567.89", "1234567.89"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, NormalizeNumber(tc.in))
		})
	}
}

func TestNormalizeNumberIdempotent(t *testing.T) {
	inputs := []string{"10 000", "10,50", "1.000,50", "1,000.50", "1,000,000", "3.14"}
	for _, in := range inputs {
		once := NormalizeNumber(in)
		require.Equal(t, once, NormalizeNumber(once), "normalize(%q) not idempotent", in)
	}
}
