package rates

import (
	"context"

	"kursbot/modules/currency"
)

// Supplier returns a USD-pivoted rate table: units of each currency per
// 1 USD, with "USD" itself present at 1.0. Implementations must return a
// snapshot that stays internally consistent for the duration of one response.
type Supplier interface {
	Rates(ctx context.Context) (currency.RateTable, error)
}

// SupplierFunc adapts a function to the Supplier interface.
type SupplierFunc func(ctx context.Context) (currency.RateTable, error)

func (f SupplierFunc) Rates(ctx context.Context) (currency.RateTable, error) {
	return f(ctx)
}
