package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func parsePrice(price string) (decimal.Decimal, bool) {
	value, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return decimal.Zero, false
	}
	return value, value.IsPositive()
}
