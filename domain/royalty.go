package domain

import (
	"math/big"

	"github.com/rafflehouse/goapi/base/ctx"
)

// RoyaltyRegistry resolves creator royalties for secondary sales. A zero
// receiver means no royalty is due.
type RoyaltyRegistry interface {
	// RateOf returns the royalty receiver and rate (parts-per-1e18) for a
	// collection. Returns EmptyAddress and zero when none is registered.
	RateOf(c ctx.Ctx, collection Address) (Address, *big.Int, error)

	Register(c ctx.Ctx, collection Address, receiver Address, rate *big.Int) error
}
