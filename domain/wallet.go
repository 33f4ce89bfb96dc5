package domain

import (
	"math/big"

	"github.com/rafflehouse/goapi/base/ctx"
)

// Wallet is the fungible-balance collaborator. All ticket payments, refunds
// and settlement transfers go through it; it is the only place a call can
// fail for lack of funds, and such failures propagate verbatim.
type Wallet interface {
	// Transfer moves amount of currency from one party to another. Fails
	// with ErrInsufficientBalance when from cannot cover amount.
	Transfer(c ctx.Ctx, currency Address, from, to Address, amount *big.Int) error

	// Deposit credits an account, bypassing balance checks. Used for
	// faucet/bootstrap flows only.
	Deposit(c ctx.Ctx, currency Address, to Address, amount *big.Int) error

	BalanceOf(c ctx.Ctx, currency Address, owner Address) (*big.Int, error)
}
