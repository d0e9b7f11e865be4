package domain

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var (
	cnicPattern = regexp.MustCompile(`^[0-9]{13}$`)
	// Pakistani mobile numbers: optional +92 or leading 0, then 10 digits.
	phonePattern = regexp.MustCompile(`^(\+92|0)?[0-9]{10}$`)
)

// ValidCNIC reports whether s is exactly 13 digits.
func ValidCNIC(s string) bool {
	return cnicPattern.MatchString(s)
}

// ValidPhone reports whether s looks like a Pakistani mobile number.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// ValidAmount reports whether a monetary amount is acceptable for a ledger
// entry: non-negative. Decimal values are always finite.
func ValidAmount(d decimal.Decimal) bool {
	return !d.IsNegative()
}
