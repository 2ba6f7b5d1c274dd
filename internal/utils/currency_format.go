package utils

import (
	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary amount with two decimal places and the
// currency code appended, e.g. "12.35 EUR". Amounts are display-rounded
// only; stored values keep full precision.
func FormatAmount(amount decimal.Decimal, currencyCode string) string {
	formatted := amount.StringFixed(2)
	if currencyCode == "" {
		return formatted
	}
	return formatted + " " + currencyCode
}
