package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a string amount to decimal.Decimal.
// It accepts both OFX-style dot decimals ("-1234.56") and Brazilian
// formatting ("1.234,56"), and strips currency markers and spaces.
// Returns ok=false when the remainder is not a number.
func ParseAmount(amountStr string) (decimal.Decimal, bool) {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "R$", "")
	amount = strings.ReplaceAll(amount, "BRL", "")

	// When a comma is present it is the decimal separator and any dots
	// are thousand separators.
	if strings.Contains(amount, ",") {
		amount = strings.ReplaceAll(amount, ".", "")
		amount = strings.ReplaceAll(amount, ",", ".")
	}

	if amount == "" {
		return decimal.Zero, false
	}
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, false
	}
	return dec, true
}

// DirectionFromAmount derives the movement direction from a signed amount.
// Zero counts as a credit, matching bank statement conventions.
func DirectionFromAmount(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return DirectionDebit
	}
	return DirectionCredit
}
