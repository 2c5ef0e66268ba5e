package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount reads a free-form currency string by keeping only its digits, so
// "85,000" and "Rs. 85,000" are both 85000. Text without digits is zero.
func ParseAmount(value string) decimal.Decimal {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, value)
	if digits == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero
	}
	return d
}
