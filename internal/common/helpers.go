package common

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// AmountDecimals is the precision of account currency amounts (cents).
	AmountDecimals = 2
)

// ParseAmount converts a user-entered amount to a decimal without float precision loss.
// Negative values and more than AmountDecimals fractional digits are rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount must not be negative")
	}
	if -d.Exponent() > AmountDecimals && !d.Equal(d.Truncate(AmountDecimals)) {
		return decimal.Zero, fmt.Errorf("amount has more than %d decimals", AmountDecimals)
	}
	return d, nil
}

// FormatAmount renders an amount with exactly AmountDecimals decimals.
// Example: FormatAmount(decimal.RequireFromString("5000")) = "5000.00"
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(AmountDecimals)
}
