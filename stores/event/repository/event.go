package repository

import (
	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/base/database/mongoclient"
	"github.com/rafflehouse/goapi/domain"
	"github.com/rafflehouse/goapi/domain/event"
	"github.com/rafflehouse/goapi/service/query"
)

type eventImpl struct {
	q query.Mongo
}

func NewEvent(q query.Mongo) event.Repo {
	return &eventImpl{q}
}

func (im *eventImpl) Create(c ctx.Ctx, value *event.Event) error {
	if err := im.q.Insert(c, domain.TableRaffleEvents, value); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *eventImpl) FindAll(c ctx.Ctx, optFns ...event.FindAllOptionsFunc) ([]event.Event, error) {
	opts, err := event.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("event.GetFindAllOptions failed")
		return nil, err
	}

	offset := int32(0)
	limit := int32(0)
	if opts.Offset != nil {
		offset = *opts.Offset
	}
	if opts.Limit != nil {
		limit = *opts.Limit
	}

	qry, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	res := []event.Event{}
	if err := im.q.Search(c, domain.TableRaffleEvents, int(offset), int(limit), "-createdAt", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
