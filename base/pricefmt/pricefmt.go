// Package pricefmt converts between wei-scale integer amounts used for
// accounting and the 18-decimal display values returned by the API.
package pricefmt

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/rafflehouse/goapi/domain"
)

const settlementDecimals = 18

// ToDisplay renders a wei-scale amount as a display decimal.
func ToDisplay(amount *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(amount, -settlementDecimals)
}

// ToDisplayString parses a stored amount string and renders it for display.
// Invalid amounts render as zero; stored amounts are validated on write.
func ToDisplayString(amount string) string {
	v, err := domain.ParseAmount(amount)
	if err != nil {
		return decimal.Zero.String()
	}
	return ToDisplay(v).String()
}

// FromDisplay converts a display decimal to the wei-scale integer used by
// the accounting paths.
func FromDisplay(d decimal.Decimal) *big.Int {
	return d.Shift(settlementDecimals).BigInt()
}
