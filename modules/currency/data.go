package currency

// Default currency universe. Mirrors the bot's production configuration; the
// fiat and crypto sets are overridable through config so new currencies can be
// added without touching parsing logic.

var defaultFiatCodes = []string{
	"USD", "EUR", "GBP", "JPY", "CHF", "CNY", "RUB",
	"AUD", "CAD", "NZD", "SEK", "NOK", "DKK", "ZAR",
	"INR", "BRL", "MXN", "SGD", "HKD", "KRW", "TRY",
	"PLN", "THB", "IDR", "HUF", "CZK", "ILS", "CLP",
	"PHP", "AED", "COP", "SAR", "MYR", "RON",
	"UZS", "UAH", "KZT",
}

var defaultCryptoCodes = []string{
	"BTC", "ETH", "USDT", "BNB", "XRP", "ADA", "SOL", "DOT",
	"DOGE", "MATIC", "TON", "NOT", "DUREV", "LTC", "HMSTR",
}

// Single-glyph currency symbols. Symbols are matched without word-boundary
// checks since they never occur inside words.
var defaultSymbols = map[string]string{
	"$": "USD",
	"€": "EUR",
	"£": "GBP",
	"¥": "JPY",
	"₽": "RUB",
	"₣": "CHF",
	"₹": "INR",
	"₺": "TRY",
	"₴": "UAH",
	"₿": "BTC",
	"₸": "KZT",
	"₮": "USDT",
}

// Colloquial word aliases, lowercase. Matched with word-boundary discipline so
// that "тон" does not fire inside "тонна". The thousands shorthand "к" must
// never appear here: it belongs to the multiplier grammar, not the alias table.
var defaultWordAliases = map[string]string{
	// Russian
	"доллар":    "USD",
	"доллара":   "USD",
	"долларов":  "USD",
	"доллары":   "USD",
	"бакс":      "USD",
	"бакса":     "USD",
	"баксов":    "USD",
	"евро":      "EUR",
	"рубль":     "RUB",
	"рубля":     "RUB",
	"рублей":    "RUB",
	"рубли":     "RUB",
	"руб":       "RUB",
	"гривна":    "UAH",
	"гривны":    "UAH",
	"гривен":    "UAH",
	"грн":       "UAH",
	"тенге":     "KZT",
	"сум":       "UZS",
	"сумов":     "UZS",
	"лира":      "TRY",
	"лиры":      "TRY",
	"лир":       "TRY",
	"юань":      "CNY",
	"юаня":      "CNY",
	"юаней":     "CNY",
	"фунт":      "GBP",
	"фунта":     "GBP",
	"фунтов":    "GBP",
	"иена":      "JPY",
	"иены":      "JPY",
	"иен":       "JPY",
	"биткоин":   "BTC",
	"биткоина":  "BTC",
	"биткоинов": "BTC",
	"эфир":      "ETH",
	"эфира":     "ETH",
	"эфириум":   "ETH",
	"тон":       "TON",
	"тона":      "TON",
	"тонов":     "TON",

	// English
	"dollar":   "USD",
	"dollars":  "USD",
	"buck":     "USD",
	"bucks":    "USD",
	"euro":     "EUR",
	"euros":    "EUR",
	"ruble":    "RUB",
	"rubles":   "RUB",
	"rouble":   "RUB",
	"roubles":  "RUB",
	"pound":    "GBP",
	"pounds":   "GBP",
	"yen":      "JPY",
	"yuan":     "CNY",
	"hryvnia":  "UAH",
	"tenge":    "KZT",
	"lira":     "TRY",
	"bitcoin":  "BTC",
	"ether":    "ETH",
	"ethereum": "ETH",
	"toncoin":  "TON",
	"tether":   "USDT",
}

// DefaultFiatCodes returns a copy of the built-in fiat code set.
func DefaultFiatCodes() []string {
	out := make([]string, len(defaultFiatCodes))
	copy(out, defaultFiatCodes)
	return out
}

// DefaultCryptoCodes returns a copy of the built-in crypto code set.
func DefaultCryptoCodes() []string {
	out := make([]string, len(defaultCryptoCodes))
	copy(out, defaultCryptoCodes)
	return out
}
