package currency

import (
	"errors"
	"fmt"
)

// RateTable maps a currency code to units of that currency per 1 USD.
// Tables are supplied externally (USD pivot, USD itself implicitly 1.0) and
// treated as immutable snapshots: one table prices one whole response.
type RateTable map[string]float64

var (
	// ErrMissingRate means a required code is absent from the table. Callers
	// building a multi-currency response skip that one line and continue.
	ErrMissingRate = errors.New("missing exchange rate")
	// ErrInvalidRate means a rate is present but zero or negative.
	ErrInvalidRate = errors.New("invalid exchange rate")
)

// Convert converts amount between two currency codes, pivoting through USD.
// The from == to case returns amount exactly, without touching the table.
func Convert(amount float64, from, to string, rates RateTable) (float64, error) {
	if from == to {
		return amount, nil
	}
	if from == "USD" {
		rate, err := lookupRate(rates, to)
		if err != nil {
			return 0, err
		}
		return amount * rate, nil
	}
	if to == "USD" {
		rate, err := lookupRate(rates, from)
		if err != nil {
			return 0, err
		}
		return amount / rate, nil
	}
	fromRate, err := lookupRate(rates, from)
	if err != nil {
		return 0, err
	}
	toRate, err := lookupRate(rates, to)
	if err != nil {
		return 0, err
	}
	return amount / fromRate * toRate, nil
}

func lookupRate(rates RateTable, code string) (float64, error) {
	rate, ok := rates[code]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingRate, code)
	}
	if rate <= 0 {
		return 0, fmt.Errorf("%w: %s = %v", ErrInvalidRate, code, rate)
	}
	return rate, nil
}
