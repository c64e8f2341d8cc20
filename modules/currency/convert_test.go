package currency

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testRates = RateTable{
	"USD": 1.0,
	"EUR": 0.92,
	"RUB": 92.5,
	"BTC": 1.0 / 45000,
}

func TestConvert(t *testing.T) {
	cases := []struct {
		name     string
		amount   float64
		from, to string
		want     float64
	}{
		{"usd to eur", 100, "USD", "EUR", 92.0},
		{"eur to usd", 92, "EUR", "USD", 100.0},
		{"rub to eur via pivot", 9250, "RUB", "EUR", 92.0},
		{"usd to usd", 100, "USD", "USD", 100.0},
		{"rub to rub", 5, "RUB", "RUB", 5.0},
		{"usd to btc", 45000, "USD", "BTC", 1.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Convert(tc.amount, tc.from, tc.to, testRates)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestConvertMissingRate(t *testing.T) {
	_, err := Convert(100, "USD", "GBP", testRates)
	require.ErrorIs(t, err, ErrMissingRate)

	_, err = Convert(100, "GBP", "USD", testRates)
	require.ErrorIs(t, err, ErrMissingRate)

	_, err = Convert(100, "GBP", "EUR", testRates)
	require.ErrorIs(t, err, ErrMissingRate)
}

func TestConvertInvalidRate(t *testing.T) {
	bad := RateTable{"USD": 1.0, "BAD": 0, "NEG": -3}

	_, err := Convert(100, "BAD", "USD", bad)
	require.ErrorIs(t, err, ErrInvalidRate)

	_, err = Convert(100, "USD", "BAD", bad)
	require.ErrorIs(t, err, ErrInvalidRate)

	_, err = Convert(100, "USD", "NEG", bad)
	require.ErrorIs(t, err, ErrInvalidRate)
}

func TestConvertRoundTrip(t *testing.T) {
	for _, code := range []string{"EUR", "RUB", "BTC"} {
		for _, amount := range []float64{0.001, 1, 42.42, 1e6} {
			there, err := Convert(amount, "USD", code, testRates)
			require.NoError(t, err)
			back, err := Convert(there, code, "USD", testRates)
			require.NoError(t, err)
			require.InEpsilon(t, amount, back, 1e-12)
		}
	}
}
