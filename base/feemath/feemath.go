// Package feemath implements the fixed-point money arithmetic used by
// listing settlement. All rates are expressed as parts-per-1e18 of the
// amount they apply to, and every division floors.
package feemath

import (
	"math/big"

	"github.com/rafflehouse/goapi/domain"
)

// Portion returns floor(amount * rate / 1e18).
func Portion(amount, rate *big.Int) *big.Int {
	res := new(big.Int).Mul(amount, rate)
	return res.Quo(res, domain.RateBase)
}

// Split divides gross sale proceeds into platform fee, royalty and net owner
// proceeds. The royalty is capped so that fee+royalty never exceeds gross,
// and fee + royalty + net == gross holds exactly.
func Split(gross, feeRate, royaltyRate *big.Int) (fee, royalty, net *big.Int) {
	fee = Portion(gross, feeRate)
	royalty = Portion(gross, royaltyRate)

	rest := new(big.Int).Sub(gross, fee)
	if royalty.Cmp(rest) > 0 {
		royalty = rest
	}

	net = new(big.Int).Sub(rest, royalty)
	return fee, royalty, net
}

// PerAddressCap returns the number of tickets one address may hold on a
// listing of maxTickets at the given cap rate, floored, with a minimum of
// one ticket so every listing stays purchasable.
func PerAddressCap(maxTickets int64, rate *big.Int) int64 {
	n := Portion(big.NewInt(maxTickets), rate).Int64()
	if n < 1 {
		return 1
	}
	return n
}
