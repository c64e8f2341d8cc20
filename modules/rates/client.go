package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"kursbot/modules/currency"
)

const (
	defaultFiatURL   = "https://open.er-api.com/v6/latest/USD"
	defaultCryptoURL = "https://api.coingecko.com/api/v3/simple/price"
	defaultExtraURL  = "https://min-api.cryptocompare.com/data/pricemulti"

	defaultTimeout = 10 * time.Second
)

// CoinGecko asset ids for the crypto set.
var defaultCryptoIDs = map[string]string{
	"BTC":   "bitcoin",
	"ETH":   "ethereum",
	"USDT":  "tether",
	"BNB":   "binancecoin",
	"XRP":   "ripple",
	"ADA":   "cardano",
	"SOL":   "solana",
	"DOT":   "polkadot",
	"DOGE":  "dogecoin",
	"MATIC": "matic-network",
	"TON":   "the-open-network",
	"LTC":   "litecoin",
}

// Symbols priced through CryptoCompare because CoinGecko lists them poorly.
var defaultExtraSymbols = []string{"NOT", "DUREV", "HMSTR"}

// ClientConfig carries the upstream endpoints; zero values select production
// defaults. Tests point the URLs at httptest servers.
type ClientConfig struct {
	FiatURL      string
	CryptoURL    string
	ExtraURL     string
	CryptoIDs    map[string]string
	ExtraSymbols []string
	Timeout      time.Duration
}

// Client fetches and merges exchange rates from the upstream price APIs into
// a single USD-pivoted table. Upstream calls are rate-limited.
type Client struct {
	httpClient   *http.Client
	fiatURL      string
	cryptoURL    string
	extraURL     string
	cryptoIDs    map[string]string
	extraSymbols []string
	limiter      *rate.Limiter
}

func NewClient(cfg ClientConfig) *Client {
	if cfg.FiatURL == "" {
		cfg.FiatURL = defaultFiatURL
	}
	if cfg.CryptoURL == "" {
		cfg.CryptoURL = defaultCryptoURL
	}
	if cfg.ExtraURL == "" {
		cfg.ExtraURL = defaultExtraURL
	}
	if cfg.CryptoIDs == nil {
		cfg.CryptoIDs = defaultCryptoIDs
	}
	if cfg.ExtraSymbols == nil {
		cfg.ExtraSymbols = defaultExtraSymbols
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		fiatURL:      cfg.FiatURL,
		cryptoURL:    cfg.CryptoURL,
		extraURL:     cfg.ExtraURL,
		cryptoIDs:    cfg.CryptoIDs,
		extraSymbols: cfg.ExtraSymbols,
		limiter:      rate.NewLimiter(rate.Every(time.Second), 3),
	}
}

type fiatResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

// Rates fetches fiat and crypto prices and merges them into one table.
// Fiat rates are mandatory; crypto sources degrade gracefully with a warning
// so a flaky price API doesn't take fiat conversion down with it.
func (c *Client) Rates(ctx context.Context) (currency.RateTable, error) {
	table := currency.RateTable{}

	if err := c.fetchFiat(ctx, table); err != nil {
		return nil, fmt.Errorf("fetch fiat rates: %w", err)
	}
	if err := c.fetchCrypto(ctx, table); err != nil {
		logrus.Warnf("crypto rates unavailable: %v", err)
	}
	if err := c.fetchExtra(ctx, table); err != nil {
		logrus.Warnf("additional crypto rates unavailable: %v", err)
	}

	table["USD"] = 1.0
	return table, nil
}

func (c *Client) fetchFiat(ctx context.Context, table currency.RateTable) error {
	var resp fiatResponse
	if err := c.getJSON(ctx, c.fiatURL, &resp); err != nil {
		return err
	}
	if resp.Result != "success" {
		return fmt.Errorf("unexpected result %q", resp.Result)
	}
	for code, perUSD := range resp.Rates {
		table[strings.ToUpper(code)] = perUSD
	}
	return nil
}

func (c *Client) fetchCrypto(ctx context.Context, table currency.RateTable) error {
	ids := make([]string, 0, len(c.cryptoIDs))
	for _, id := range c.cryptoIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	u := c.cryptoURL + "?ids=" + url.QueryEscape(strings.Join(ids, ",")) + "&vs_currencies=usd"
	var resp map[string]struct {
		USD float64 `json:"usd"`
	}
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return err
	}

	for code, id := range c.cryptoIDs {
		priced, ok := resp[id]
		if !ok || priced.USD <= 0 {
			continue
		}
		// The table is pivoted on USD, so a coin worth 45000 USD is
		// 1/45000 units per dollar.
		table[code] = 1 / priced.USD
	}
	return nil
}

func (c *Client) fetchExtra(ctx context.Context, table currency.RateTable) error {
	if len(c.extraSymbols) == 0 {
		return nil
	}
	u := c.extraURL + "?fsyms=" + url.QueryEscape(strings.Join(c.extraSymbols, ",")) + "&tsyms=USD"
	var resp map[string]map[string]float64
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return err
	}
	for _, sym := range c.extraSymbols {
		if priceUSD := resp[sym]["USD"]; priceUSD > 0 {
			table[sym] = 1 / priceUSD
		}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: status %d", rawURL, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
