package bot

// Strings is the set of user-facing phrases for one language.
type Strings struct {
	FiatHeader     string
	CryptoHeader   string
	Hint           string
	Error          string
	NegativeAmount string
}

var languages = map[string]Strings{
	"ru": {
		FiatHeader:     "Фиатные валюты:",
		CryptoHeader:   "Криптовалюты:",
		Hint:           "Чтобы конвертировать, напишите сумму и код валюты, например «100 USD» или «10,982 KZT».",
		Error:          "Произошла ошибка. Пожалуйста, попробуйте снова.",
		NegativeAmount: "Результат вычисления отрицательный или равен нулю. Пожалуйста, введите положительную сумму.",
	},
	"en": {
		FiatHeader:     "Fiat currencies:",
		CryptoHeader:   "Cryptocurrencies:",
		Hint:           "To convert, send an amount and a currency code, e.g. '100 USD' or '10,982 KZT'.",
		Error:          "An error occurred. Please try again.",
		NegativeAmount: "The result of the calculation is negative or zero. Please enter a positive amount.",
	},
}

var triggerWords = map[string][]string{
	"ru": {"конвертировать", "перевести", "convert"},
	"en": {"convert", "exchange"},
}

// Localize returns the strings for lang, falling back to English.
func Localize(lang string) Strings {
	if s, ok := languages[lang]; ok {
		return s
	}
	return languages["en"]
}
