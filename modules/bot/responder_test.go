package bot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"kursbot/commontypes"
	"kursbot/modules/currency"
	"kursbot/modules/rates"
	"kursbot/modules/settings"
)

func newTestResponder(supplier rates.Supplier) *Responder {
	table := currency.NewTable(currency.DefaultFiatCodes(), currency.DefaultCryptoCodes(), nil)
	return NewResponder(table, currency.NewExtractor(table), supplier, settings.NewMemoryStore())
}

func fixedRates() rates.Supplier {
	return rates.SupplierFunc(func(ctx context.Context) (currency.RateTable, error) {
		return currency.RateTable{"USD": 1, "EUR": 0.92, "RUB": 92.5, "BTC": 1.0 / 45000}, nil
	})
}

func msg(text string) commontypes.Message {
	return commontypes.Message{ChatID: 1, UserID: 1, Text: text}
}

func TestResponderSingleConversion(t *testing.T) {
	r := newTestResponder(fixedRates())

	replies, err := r.HandleMessage(context.Background(), msg("100 USD"))
	require.NoError(t, err)
	require.Len(t, replies, 1)
	require.Equal(t, commontypes.ReplyConversion, replies[0].Kind)

	text := replies[0].Text
	require.Contains(t, text, "100 USD")
	require.Contains(t, text, "92.00 EUR")
	require.Contains(t, text, "9,250.00 RUB")
	require.Contains(t, text, "BTC")
	require.Contains(t, text, "<blockquote expandable>")
}

func TestResponderTargetedConversion(t *testing.T) {
	r := newTestResponder(fixedRates())

	replies, err := r.HandleMessage(context.Background(), msg("100 USD EUR"))
	require.NoError(t, err)
	require.Len(t, replies, 1)
	require.Equal(t, "100 USD\n= 92.00 EUR", replies[0].Text)
}

func TestResponderMultipleRequests(t *testing.T) {
	r := newTestResponder(fixedRates())

	replies, err := r.HandleMessage(context.Background(), msg("100 USD и 92 EUR"))
	require.NoError(t, err)
	require.Len(t, replies, 1)

	text := replies[0].Text
	require.Contains(t, text, "100 USD")
	require.Contains(t, text, "92 EUR")
	require.Contains(t, text, "100.00 USD") // 92 EUR priced back in dollars
	// One fiat section per request block.
	require.Equal(t, 2, strings.Count(text, Localize("ru").FiatHeader))
}

func TestResponderHint(t *testing.T) {
	r := newTestResponder(fixedRates())

	replies, err := r.HandleMessage(context.Background(), msg("перевести 100"))
	require.NoError(t, err)
	require.Len(t, replies, 1)
	require.Equal(t, commontypes.ReplyHint, replies[0].Kind)
}

func TestResponderIgnoresSmallTalk(t *testing.T) {
	r := newTestResponder(fixedRates())

	for _, text := range []string{"привет", "/start", "", "перевести деньги"} {
		replies, err := r.HandleMessage(context.Background(), msg(text))
		require.NoError(t, err)
		require.Empty(t, replies, "input %q", text)
	}
}

func TestResponderNegativeAmount(t *testing.T) {
	r := newTestResponder(fixedRates())

	replies, err := r.HandleMessage(context.Background(), msg("2-10 USD"))
	require.NoError(t, err)
	require.Len(t, replies, 1)
	require.Equal(t, commontypes.ReplyError, replies[0].Kind)
}

func TestResponderRatesUnavailable(t *testing.T) {
	failing := rates.SupplierFunc(func(ctx context.Context) (currency.RateTable, error) {
		return nil, errors.New("upstream down")
	})
	r := newTestResponder(failing)

	replies, err := r.HandleMessage(context.Background(), msg("100 USD"))
	require.NoError(t, err)
	require.Len(t, replies, 1)
	require.Equal(t, commontypes.ReplyError, replies[0].Kind)
}
