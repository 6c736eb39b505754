// Package money handles the currency text the storefront renders.
// Amounts are carried as integer cents so subtotal/tax/total arithmetic
// is exact at the two decimal digits the UI shows.
package money

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// PricePattern is the accepted rendering of a price: a dollar sign,
// digits, and exactly two decimal digits.
var PricePattern = regexp.MustCompile(`^\$\d+\.\d{2}$`)

// ParseCents parses a rendered price like "$29.99" into cents. A
// leading label ("Item total: $29.99") is tolerated: parsing starts at
// the dollar sign.
func ParseCents(text string) (int64, error) {
	trimmed := strings.TrimSpace(text)
	if i := strings.IndexByte(trimmed, '$'); i >= 0 {
		trimmed = trimmed[i:]
	}
	if !PricePattern.MatchString(trimmed) {
		return 0, fmt.Errorf("price %q does not match %s", text, PricePattern)
	}
	parts := strings.SplitN(strings.TrimPrefix(trimmed, "$"), ".", 2)
	dollars, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse dollars of %q: %w", text, err)
	}
	cents, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse cents of %q: %w", text, err)
	}
	return dollars*100 + cents, nil
}

// FormatCents renders cents the way the storefront does: "$29.99".
func FormatCents(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

// SumCents parses every rendered price and returns the exact sum.
func SumCents(texts []string) (int64, error) {
	var total int64
	for _, text := range texts {
		cents, err := ParseCents(text)
		if err != nil {
			return 0, err
		}
		total += cents
	}
	return total, nil
}
