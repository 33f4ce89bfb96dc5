package royalty

import (
	"math/big"

	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/domain"
	"github.com/rafflehouse/goapi/service/query"
)

type royaltyDoc struct {
	Collection domain.Address `bson:"collection"`
	Receiver   domain.Address `bson:"receiver"`
	// Rate is parts-per-1e18 of sale price
	Rate string `bson:"rate"`
}

type impl struct {
	q query.Mongo
}

// New returns a mongo-backed royalty registry.
func New(q query.Mongo) domain.RoyaltyRegistry {
	return &impl{q}
}

func (im *impl) RateOf(c ctx.Ctx, collection domain.Address) (domain.Address, *big.Int, error) {
	res := royaltyDoc{}
	selector := royaltyDoc{Collection: collection.ToLower()}
	if err := im.q.FindOne(c, domain.TableRoyalties, selector, &res); err == query.ErrNotFound {
		return domain.EmptyAddress, new(big.Int), nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return "", nil, err
	}

	rate, err := domain.ParseRate(res.Rate)
	if err != nil {
		c.WithField("err", err).Error("malformed stored royalty rate")
		return "", nil, err
	}
	return res.Receiver, rate, nil
}

func (im *impl) Register(c ctx.Ctx, collection domain.Address, receiver domain.Address, rate *big.Int) error {
	selector := royaltyDoc{Collection: collection.ToLower()}
	update := royaltyDoc{
		Collection: collection.ToLower(),
		Receiver:   receiver.ToLower(),
		Rate:       rate.String(),
	}
	if err := im.q.Upsert(c, domain.TableRoyalties, selector, update); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}
