package repository

import (
	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/domain"
	"github.com/rafflehouse/goapi/domain/listing"
	"github.com/rafflehouse/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type pendingRequestImpl struct {
	q query.Mongo
}

func NewPendingRequest(q query.Mongo) listing.PendingRequestRepo {
	return &pendingRequestImpl{q}
}

func (im *pendingRequestImpl) Create(c ctx.Ctx, value *listing.PendingRequest) error {
	if err := im.q.Insert(c, domain.TablePendingRequests, value); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

// Consume removes the request document and returns its listing id. Remove
// reports ErrNotFound on the second call with the same id, which makes
// replayed or unknown deliveries detectable by the caller.
func (im *pendingRequestImpl) Consume(c ctx.Ctx, requestId domain.RandomnessRequestId) (domain.ListingId, error) {
	res := listing.PendingRequest{}
	selector := bson.M{"requestId": requestId}

	if err := im.q.FindOne(c, domain.TablePendingRequests, selector, &res); err == query.ErrNotFound {
		return 0, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return 0, err
	}

	if err := im.q.Remove(c, domain.TablePendingRequests, selector); err == query.ErrNotFound {
		// lost the race with a concurrent consumer
		return 0, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Remove failed")
		return 0, err
	}

	return res.ListingId, nil
}
