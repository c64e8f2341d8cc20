package bot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitRequests(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"100 USD", []string{"100 USD"}},
		{"100 USD и 200 EUR", []string{"100 USD", "200 EUR"}},
		{"100 USD and 200 EUR", []string{"100 USD", "200 EUR"}},
		{"100 USD а также 200 EUR", []string{"100 USD", "200 EUR"}},
		{"100 USD; 200 EUR", []string{"100 USD", "200 EUR"}},
		{"100 USD\n200 EUR", []string{"100 USD", "200 EUR"}},
		{"100 USD, 200 EUR", []string{"100 USD", "200 EUR"}},
		{"100 USD + 200 EUR", []string{"100 USD", "200 EUR"}},
		// A comma before a non-digit is not a separator.
		{"100 USD, eur", []string{"100 USD, eur"}},
		// Decimal and grouping commas survive.
		{"10,982 KZT", []string{"10,982 KZT"}},
		{"", []string{""}},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, SplitRequests(tt.in), "input %q", tt.in)
	}
}
