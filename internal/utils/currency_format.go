package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupees renders an amount as "Rs. 1,234" for display and for the
// spoken payment confirmation. Fractional paisa are dropped; the ledger deals
// in whole rupees in practice.
func FormatRupees(amount decimal.Decimal) string {
	whole := amount.Round(0).String()

	neg := strings.HasPrefix(whole, "-")
	digits := strings.TrimPrefix(whole, "-")

	var b strings.Builder
	pre := len(digits) % 3
	if pre > 0 {
		b.WriteString(digits[:pre])
	}
	for i := pre; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	out := "Rs. " + b.String()
	if neg {
		out = "Rs. -" + b.String()
	}
	return out
}
