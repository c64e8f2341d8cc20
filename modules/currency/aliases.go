package currency

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Table maps surface forms (symbols, colloquial words, ISO/crypto codes) to
// canonical currency codes. It is immutable after construction and safe for
// concurrent use without locking.
type Table struct {
	symbols map[string]string
	words   map[string]string
	codes   map[string]string // lowercase code -> canonical code
	fiat    map[string]bool
	crypto  map[string]bool

	// entries is every surface form sorted by descending length so that
	// longest-match-first is explicit rather than delegated to regex
	// alternation order.
	entries []aliasEntry
}

type aliasEntry struct {
	form     string
	code     string
	boundary bool // require non-letter/digit runes on both sides
}

// Match is an alias occurrence inside a scanned string. Start and End are byte
// offsets into the scanned (lowercased) text.
type Match struct {
	Code  string
	Start int
	End   int
}

// NewTable builds an alias table for the given fiat and crypto code sets.
// extraWords adds or overrides colloquial word aliases (lowercase surface form
// to canonical code); pass nil to use the built-in set only.
func NewTable(fiatCodes, cryptoCodes []string, extraWords map[string]string) *Table {
	t := &Table{
		symbols: make(map[string]string, len(defaultSymbols)),
		words:   make(map[string]string, len(defaultWordAliases)+len(extraWords)),
		codes:   make(map[string]string, len(fiatCodes)+len(cryptoCodes)),
		fiat:    make(map[string]bool, len(fiatCodes)),
		crypto:  make(map[string]bool, len(cryptoCodes)),
	}

	for _, code := range fiatCodes {
		canonical := strings.ToUpper(code)
		t.codes[strings.ToLower(code)] = canonical
		t.fiat[canonical] = true
	}
	for _, code := range cryptoCodes {
		canonical := strings.ToUpper(code)
		t.codes[strings.ToLower(code)] = canonical
		t.crypto[canonical] = true
	}

	// Aliases pointing outside the configured universe are dropped so that a
	// lookup can never produce an unsupported code.
	for sym, code := range defaultSymbols {
		if t.Known(code) {
			t.symbols[sym] = strings.ToUpper(code)
		}
	}
	for word, code := range defaultWordAliases {
		if t.Known(code) {
			t.words[strings.ToLower(word)] = strings.ToUpper(code)
		}
	}
	for word, code := range extraWords {
		if t.Known(code) {
			t.words[strings.ToLower(word)] = strings.ToUpper(code)
		}
	}

	for sym, code := range t.symbols {
		t.entries = append(t.entries, aliasEntry{form: sym, code: code, boundary: false})
	}
	for word, code := range t.words {
		t.entries = append(t.entries, aliasEntry{form: word, code: code, boundary: true})
	}
	for lower, code := range t.codes {
		if _, dup := t.words[lower]; dup {
			continue
		}
		t.entries = append(t.entries, aliasEntry{form: lower, code: code, boundary: true})
	}

	sort.Slice(t.entries, func(i, j int) bool {
		if len(t.entries[i].form) != len(t.entries[j].form) {
			return len(t.entries[i].form) > len(t.entries[j].form)
		}
		return t.entries[i].form < t.entries[j].form
	})

	return t
}

// IsFiat reports whether code belongs to the configured fiat set.
func (t *Table) IsFiat(code string) bool { return t.fiat[strings.ToUpper(code)] }

// IsCrypto reports whether code belongs to the configured crypto set.
func (t *Table) IsCrypto(code string) bool { return t.crypto[strings.ToUpper(code)] }

// Known reports whether code is in the supported currency universe.
func (t *Table) Known(code string) bool {
	upper := strings.ToUpper(code)
	return t.fiat[upper] || t.crypto[upper]
}

// Resolve maps a single whole token to a canonical currency code. Precedence:
// symbol, word alias, bare code (case-insensitive).
func (t *Table) Resolve(token string) (string, bool) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return "", false
	}
	if code, ok := t.symbols[trimmed]; ok {
		return code, true
	}
	lower := strings.ToLower(trimmed)
	if code, ok := t.words[lower]; ok {
		return code, true
	}
	if code, ok := t.codes[lower]; ok {
		return code, true
	}
	return "", false
}

// FindAlias scans lowercased text for the best currency alias occurrence:
// the longest surface form wins, ties broken by leftmost position. Word and
// code aliases only match on word boundaries; symbols match anywhere.
func (t *Table) FindAlias(text string) (Match, bool) {
	best := Match{Start: -1}
	bestLen := 0
	for _, e := range t.entries {
		if len(e.form) < bestLen {
			break // entries are length-sorted, nothing longer remains
		}
		pos := indexAlias(text, e.form, e.boundary)
		if pos < 0 {
			continue
		}
		if len(e.form) > bestLen || pos < best.Start {
			best = Match{Code: e.code, Start: pos, End: pos + len(e.form)}
			bestLen = len(e.form)
		}
	}
	if best.Start < 0 {
		return Match{}, false
	}
	return best, true
}

// indexAlias finds the first occurrence of form in text, honoring word
// boundaries when required. Go's \b is ASCII-only, so Cyrillic boundaries are
// checked by hand against letters and digits.
func indexAlias(text, form string, boundary bool) int {
	offset := 0
	for {
		i := strings.Index(text[offset:], form)
		if i < 0 {
			return -1
		}
		pos := offset + i
		if !boundary || isBoundary(text, pos, pos+len(form)) {
			return pos
		}
		offset = pos + 1
	}
}

func isBoundary(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
