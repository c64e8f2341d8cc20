package currency

import "strings"

// NormalizeNumber rewrites a raw numeric substring with an unknown mix of
// dots, commas and interior spaces into a canonical decimal-point literal.
// The function is idempotent: its output contains at most one dot and no
// commas or spaces.
//
// Disambiguation rules, first match wins:
//  1. interior whitespace is thousands grouping: "10 982" -> "10982"
//  2. one comma, no dots: a fractional tail of <=2 digits means the comma is
//     a decimal point ("10,50"); otherwise it is a thousands separator
//  3. one dot, no commas: already canonical
//  4. both present: whichever separator occurs last is the decimal point,
//     everything else is grouping ("1.000,50" and "1,000.50" -> "1000.50")
//  5. repeated commas (or dots) alone are grouping and get stripped
func NormalizeNumber(raw string) string {
	s := strings.ReplaceAll(raw, " ", "")
	s = strings.ReplaceAll(s, " ", "") // non-breaking space
	s = strings.ReplaceAll(s, " ", "") // narrow no-break space

	dots := strings.Count(s, ".")
	commas := strings.Count(s, ",")

	switch {
	case commas == 1 && dots == 0:
		frac := s[strings.IndexByte(s, ',')+1:]
		if len(frac) <= 2 {
			return strings.Replace(s, ",", ".", 1)
		}
		return strings.ReplaceAll(s, ",", "")

	case dots == 1 && commas == 0:
		return s

	case dots > 0 && commas > 0:
		if strings.LastIndexByte(s, ',') > strings.LastIndexByte(s, '.') {
			return replaceLastSeparator(strings.ReplaceAll(s, ".", ""), ',')
		}
		return replaceLastSeparator(strings.ReplaceAll(s, ",", ""), '.')

	case commas > 1:
		return strings.ReplaceAll(s, ",", "")

	case dots > 1:
		return strings.ReplaceAll(s, ".", "")
	}

	return s
}

// replaceLastSeparator strips every occurrence of sep except the last one,
// which becomes the decimal point.
func replaceLastSeparator(s string, sep byte) string {
	last := strings.LastIndexByte(s, sep)
	if last < 0 {
		return s
	}
	head := strings.ReplaceAll(s[:last], string(sep), "")
	return head + "." + s[last+1:]
}
