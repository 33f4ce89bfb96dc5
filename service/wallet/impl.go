package wallet

import (
	"math/big"

	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/domain"
	"github.com/rafflehouse/goapi/service/query"
)

type balance struct {
	Currency domain.Address `bson:"currency"`
	Owner    domain.Address `bson:"owner"`
	// Amount is a wei-scale base-10 string
	Amount string `bson:"amount"`
}

type impl struct {
	q query.Mongo
}

// New returns a mongo-backed fungible balance service. Callers that need
// multi-document atomicity run it inside query.RunWithTransaction.
func New(q query.Mongo) domain.Wallet {
	return &impl{q}
}

func (im *impl) balanceOf(c ctx.Ctx, currency, owner domain.Address) (*big.Int, error) {
	res := balance{}
	selector := balance{Currency: currency.ToLower(), Owner: owner.ToLower()}
	if err := im.q.FindOne(c, domain.TableBalances, selector, &res); err == query.ErrNotFound {
		return new(big.Int), nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return domain.ParseAmount(res.Amount)
}

func (im *impl) setBalance(c ctx.Ctx, currency, owner domain.Address, amount *big.Int) error {
	selector := balance{Currency: currency.ToLower(), Owner: owner.ToLower()}
	update := balance{
		Currency: currency.ToLower(),
		Owner:    owner.ToLower(),
		Amount:   amount.String(),
	}
	if err := im.q.Upsert(c, domain.TableBalances, selector, update); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) Transfer(c ctx.Ctx, currency domain.Address, from, to domain.Address, amount *big.Int) error {
	if amount.Sign() == 0 || from.Equals(to) {
		return nil
	}

	fromBal, err := im.balanceOf(c, currency, from)
	if err != nil {
		return err
	}
	if fromBal.Cmp(amount) < 0 {
		return domain.ErrInsufficientBalance
	}

	toBal, err := im.balanceOf(c, currency, to)
	if err != nil {
		return err
	}

	if err := im.setBalance(c, currency, from, new(big.Int).Sub(fromBal, amount)); err != nil {
		return err
	}
	return im.setBalance(c, currency, to, new(big.Int).Add(toBal, amount))
}

func (im *impl) Deposit(c ctx.Ctx, currency domain.Address, to domain.Address, amount *big.Int) error {
	bal, err := im.balanceOf(c, currency, to)
	if err != nil {
		return err
	}
	return im.setBalance(c, currency, to, new(big.Int).Add(bal, amount))
}

func (im *impl) BalanceOf(c ctx.Ctx, currency domain.Address, owner domain.Address) (*big.Int, error) {
	return im.balanceOf(c, currency, owner)
}
