package currency

import (
	"math"
	"strconv"
	"strings"

	"github.com/leekchan/accounting"
)

// TooLargeSentinel is returned for magnitudes beyond any meaningful display.
// The 1e100 threshold is a hard contract: callers use it for input validation.
const TooLargeSentinel = "♾️"

const tooLargeThreshold = 1e100

// FormatOptions selects the display tiering for FormatNumber.
type FormatOptions struct {
	// Crypto selects the crypto magnitude tiers (more fractional digits,
	// M/B abbreviation, scientific notation at the extremes).
	Crypto bool
	// OriginalAmount echoes the user's own input: space-grouped thousands,
	// no forced decimals.
	OriginalAmount bool
	// FiatAbbrev abbreviates large fiat values into M/B/T. Off by default;
	// kept as a policy switch rather than hard-wired behavior.
	FiatAbbrev bool
}

// FormatNumber renders a value as a display string with magnitude-dependent
// precision. The sign is applied to the formatted absolute value. All tier
// boundaries are half-open on the lower bound, so exactly 1.0 in crypto mode
// lands in the <1000 tier.
func FormatNumber(value float64, opts FormatOptions) string {
	if math.IsNaN(value) || math.Abs(value) > tooLargeThreshold {
		return TooLargeSentinel
	}

	sign := ""
	if value < 0 {
		sign = "-"
	}
	v := math.Abs(value)

	switch {
	case opts.OriginalAmount:
		return sign + formatOriginal(v)
	case opts.Crypto:
		return sign + formatCrypto(v)
	default:
		return sign + formatFiat(v, opts.FiatAbbrev)
	}
}

// formatOriginal echoes the typed amount: integers get space-grouped
// thousands, fractions keep up to ten significant fractional digits.
func formatOriginal(v float64) string {
	if v == math.Trunc(v) {
		return groupThousands(v, 0, " ")
	}
	return stripZeros(groupThousands(v, 10, " "))
}

func formatCrypto(v float64) string {
	switch {
	case v == 0:
		return "0"
	case v < 1e-8:
		return strconv.FormatFloat(v, 'e', 2, 64)
	case v < 0.01:
		return stripZeros(strconv.FormatFloat(v, 'f', 8, 64))
	case v < 1:
		return stripZeros(strconv.FormatFloat(v, 'f', 6, 64))
	case v < 1000:
		return stripZeros(strconv.FormatFloat(v, 'f', 4, 64))
	case v < 1e6:
		return groupThousands(v, 2, ",")
	case v < 1e9:
		return strconv.FormatFloat(v/1e6, 'f', 3, 64) + "M"
	case v < 1e12:
		return strconv.FormatFloat(v/1e9, 'f', 3, 64) + "B"
	default:
		return strconv.FormatFloat(v, 'e', 2, 64)
	}
}

func formatFiat(v float64, abbrev bool) string {
	switch {
	case v == 0:
		return "0"
	case v < 0.01:
		return stripZeros(strconv.FormatFloat(v, 'f', 6, 64))
	case v < 1:
		return stripZeros(strconv.FormatFloat(v, 'f', 4, 64))
	case abbrev && v >= 1e6:
		return abbreviateFiat(v)
	default:
		return groupThousands(v, 2, ",")
	}
}

func abbreviateFiat(v float64) string {
	switch {
	case v < 1e9:
		return strconv.FormatFloat(v/1e6, 'f', 2, 64) + "M"
	case v < 1e12:
		return strconv.FormatFloat(v/1e9, 'f', 2, 64) + "B"
	case v < 1e15:
		return strconv.FormatFloat(v/1e12, 'f', 2, 64) + "T"
	default:
		return strconv.FormatFloat(v, 'e', 2, 64)
	}
}

func groupThousands(v float64, precision int, thousand string) string {
	ac := accounting.Accounting{Symbol: "", Precision: precision, Thousand: thousand, Decimal: "."}
	return ac.FormatMoneyFloat64(v)
}

func stripZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
