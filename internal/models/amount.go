package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a monetary magnitude from user-supplied text. Leading
// currency markers and surrounding whitespace are tolerated. Amounts are
// decimals, never float64, to avoid accumulation drift in query totals.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimLeft(cleaned, "₹$ ")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return amount, nil
}

// FormatAmount renders an amount for user-facing messages, trimming
// insignificant trailing zeros ("250", "99.5").
func FormatAmount(amount decimal.Decimal) string {
	return amount.String()
}
