// Package money converts between decimal amount strings, integer cents and
// display currency strings. Amounts are stored as integer cents everywhere
// to avoid floating-point rounding error.
package money

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrInvalidAmount = errors.New("invalid amount")

var printer = message.NewPrinter(language.English)

// ParseCents converts a decimal string in major units to integer cents.
// The third decimal place rounds half-up, so "12.345" is 1235 cents rather
// than the 1234 a float multiplication would truncate to. Negative amounts
// and non-numeric input return ErrInvalidAmount.
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	if !strings.ContainsFunc(s, unicode.IsDigit) {
		return 0, ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxCentsSafe = (1<<63 - 1) / 100
	if iv > maxCentsSafe {
		return 0, ErrInvalidAmount
	}

	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	return iv*100 + fracCents, nil
}

// FormatCents renders integer cents as a dollar string with thousands
// separators, e.g. 123456 -> "$1,234.56".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return printer.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// ToMajorUnits converts cents to a major-unit decimal value for display
// forms, e.g. 25050 -> 250.50.
func ToMajorUnits(cents int64) float64 {
	return float64(cents) / 100
}
