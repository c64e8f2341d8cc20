package currency

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Extractor turns free text into an (amount, currency) pair using an injected
// alias table. It is pure and safe for concurrent use.
type Extractor struct {
	table *Table
}

func NewExtractor(table *Table) *Extractor {
	return &Extractor{table: table}
}

// Magnitude multiplier words accepted directly after a number: "5к" -> 5000.
// Closed set; these words are part of the amount grammar and are checked
// before generic arithmetic so "5к" is not misread as a number plus garbage.
var multiplierWords = map[string]float64{
	"к":      1e3,
	"k":      1e3,
	"тыс":    1e3,
	"тысяч":  1e3,
	"тысячи": 1e3,
	"тысяча": 1e3,

	"кк":        1e6,
	"kk":        1e6,
	"m":         1e6,
	"млн":       1e6,
	"лям":       1e6,
	"ляма":      1e6,
	"лямов":     1e6,
	"миллион":   1e6,
	"миллиона":  1e6,
	"миллионов": 1e6,
	"million":   1e6,

	"b":          1e9,
	"bn":         1e9,
	"млрд":       1e9,
	"миллиард":   1e9,
	"миллиарда":  1e9,
	"миллиардов": 1e9,
	"billion":    1e9,
}

var (
	plainNumberRegex = regexp.MustCompile(`[0-9]+(?:[0-9\s\x{00a0},.]*[0-9])?`)
	numberBodyRegex  = regexp.MustCompile(`^[0-9][0-9\s\x{00a0},.]*$`)
)

const arithmeticChars = "+-*/()^х×÷:"

// Extract locates a currency token anywhere in text (prefix or suffix),
// removes it, and resolves the remaining text to a non-negative amount.
// Resolution order: multiplier suffix, arithmetic expression, first plain
// number, digit stripping. The zero return with ok=false is the normal
// outcome for ordinary chat messages and is deliberately cheap.
func (e *Extractor) Extract(text string) (float64, string, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return 0, "", false
	}
	// An amount needs at least one digit; most chat messages have none.
	if !strings.ContainsFunc(s, unicode.IsDigit) {
		return 0, "", false
	}

	match, ok := e.table.FindAlias(s)
	if !ok {
		return 0, "", false
	}

	amountText := strings.TrimSpace(s[:match.Start] + " " + s[match.End:])
	if amountText == "" {
		return 0, "", false
	}

	if amount, ok := parseWithMultiplier(amountText); ok {
		return amount, match.Code, true
	}

	if strings.ContainsAny(amountText, arithmeticChars) {
		if amount, err := EvaluateExpression(amountText); err == nil {
			return amount, match.Code, true
		}
	}

	if run := plainNumberRegex.FindString(amountText); run != "" {
		if amount, err := strconv.ParseFloat(NormalizeNumber(run), 64); err == nil && isFinite(amount) {
			return amount, match.Code, true
		}
	}

	if amount, ok := parseDigitsOnly(amountText); ok {
		return amount, match.Code, true
	}

	return 0, "", false
}

// parseWithMultiplier matches the <number><optional-space><multiplier-word>
// shape. The amount grammar has no sign here, so results are non-negative.
func parseWithMultiplier(s string) (float64, bool) {
	word := trailingLetters(s)
	if word == "" {
		return 0, false
	}
	factor, ok := multiplierWords[word]
	if !ok {
		return 0, false
	}
	body := strings.TrimSpace(s[:len(s)-len(word)])
	if !numberBodyRegex.MatchString(body) {
		return 0, false
	}
	amount, err := strconv.ParseFloat(NormalizeNumber(body), 64)
	if err != nil || !isFinite(amount) {
		return 0, false
	}
	return amount * factor, true
}

// trailingLetters returns the run of letters at the end of s.
func trailingLetters(s string) string {
	runes := []rune(s)
	i := len(runes)
	for i > 0 && unicode.IsLetter(runes[i-1]) {
		i--
	}
	return string(runes[i:])
}

// parseDigitsOnly is the last resort: strip everything except digits and the
// decimal point and try a direct parse.
func parseDigitsOnly(s string) (float64, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	amount, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || !isFinite(amount) {
		return 0, false
	}
	return amount, true
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
