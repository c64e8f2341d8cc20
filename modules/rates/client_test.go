package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientRates(t *testing.T) {
	fiatSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"success","rates":{"USD":1,"EUR":0.92,"RUB":92.5}}`))
	}))
	defer fiatSrv.Close()

	cryptoSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Contains(t, r.URL.Query().Get("ids"), "bitcoin")
		w.Write([]byte(`{"bitcoin":{"usd":45000},"the-open-network":{"usd":5}}`))
	}))
	defer cryptoSrv.Close()

	extraSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"NOT":{"USD":0.002}}`))
	}))
	defer extraSrv.Close()

	client := NewClient(ClientConfig{
		FiatURL:      fiatSrv.URL,
		CryptoURL:    cryptoSrv.URL,
		ExtraURL:     extraSrv.URL,
		CryptoIDs:    map[string]string{"BTC": "bitcoin", "TON": "the-open-network"},
		ExtraSymbols: []string{"NOT"},
	})

	table, err := client.Rates(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1.0, table["USD"])
	require.Equal(t, 0.92, table["EUR"])
	require.Equal(t, 92.5, table["RUB"])
	require.InDelta(t, 1.0/45000, table["BTC"], 1e-12)
	require.InDelta(t, 1.0/5, table["TON"], 1e-12)
	require.InDelta(t, 1.0/0.002, table["NOT"], 1e-9)
}

func TestClientRatesFiatFailure(t *testing.T) {
	fiatSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer fiatSrv.Close()

	client := NewClient(ClientConfig{
		FiatURL:      fiatSrv.URL,
		CryptoURL:    fiatSrv.URL,
		ExtraURL:     fiatSrv.URL,
		ExtraSymbols: []string{},
	})

	_, err := client.Rates(context.Background())
	require.Error(t, err)
}

func TestClientRatesCryptoFailureIsSoft(t *testing.T) {
	fiatSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"success","rates":{"EUR":0.92}}`))
	}))
	defer fiatSrv.Close()

	brokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer brokenSrv.Close()

	client := NewClient(ClientConfig{
		FiatURL:   fiatSrv.URL,
		CryptoURL: brokenSrv.URL,
		ExtraURL:  brokenSrv.URL,
	})

	table, err := client.Rates(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0.92, table["EUR"])
	require.Equal(t, 1.0, table["USD"])
	require.NotContains(t, table, "BTC")
}
