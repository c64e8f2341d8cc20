package bot

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A message can carry several conversion requests joined by conjunctions,
// punctuation or line breaks: "100 USD и 200 EUR", "5к рублей; 10 долларов".
var requestSeparatorRegex = regexp.MustCompile(`(?i)\s+и\s+|\s+а\s+также\s+|\s+and\s+|;|\n|\s+\+\s+|,\s+`)

// SplitRequests breaks a message into individual conversion requests.
// A comma only acts as a separator when a digit follows it, so "10,982 KZT"
// stays a single request while "100 USD, 200 EUR" splits in two.
func SplitRequests(text string) []string {
	var parts []string
	start := 0
	for _, loc := range requestSeparatorRegex.FindAllStringIndex(text, -1) {
		if text[loc[0]] == ',' {
			next, _ := utf8.DecodeRuneInString(text[loc[1]:])
			if !unicode.IsDigit(next) {
				continue
			}
		}
		if piece := strings.TrimSpace(text[start:loc[0]]); piece != "" {
			parts = append(parts, piece)
		}
		start = loc[1]
	}
	if piece := strings.TrimSpace(text[start:]); piece != "" {
		parts = append(parts, piece)
	}
	if len(parts) == 0 {
		return []string{strings.TrimSpace(text)}
	}
	return parts
}
