package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is held internally as int64 cents. The wire and display form is a
// fixed-point decimal string with two places ("1500.00").

// FormatCents renders cents as a two-decimal string.
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// ParseCents parses a decimal amount string into cents. More than two
// decimal places is rejected rather than rounded.
func ParseCents(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	scaled := d.Shift(2)
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	return scaled.IntPart(), nil
}
