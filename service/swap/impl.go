package swap

import (
	"math/big"

	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/domain"
)

// Account is the internal party holding funds mid-swap.
const Account = domain.Address("0x0000000000000000000000000000000000005a9b")

type impl struct {
	wallet domain.Wallet
	// rateNum/rateDen price DstCurrency in SrcCurrency units
	rateNum *big.Int
	rateDen *big.Int
}

// New returns a swap adapter settling against the wallet service at a fixed
// conversion rate. Production deployments point this at an aggregator; the
// fixed rate keeps local and test environments deterministic.
func New(wallet domain.Wallet, rateNum, rateDen int64) domain.Swapper {
	if rateNum <= 0 || rateDen <= 0 {
		panic("swap: conversion rate must be positive")
	}
	return &impl{
		wallet:  wallet,
		rateNum: big.NewInt(rateNum),
		rateDen: big.NewInt(rateDen),
	}
}

func (im *impl) Swap(c ctx.Ctx, caller domain.Address, desc domain.SwapDescription, payload []byte) (*big.Int, error) {
	amount, err := domain.ParseAmount(desc.Amount)
	if err != nil {
		return nil, domain.ErrInvalidSwapDescription
	}

	if err := im.wallet.Transfer(c, desc.SrcCurrency, caller, Account, amount); err != nil {
		return nil, err
	}

	out := new(big.Int).Div(new(big.Int).Mul(amount, im.rateNum), im.rateDen)
	if err := im.wallet.Deposit(c, desc.DstCurrency, desc.DstReceiver, out); err != nil {
		return nil, err
	}
	return out, nil
}
