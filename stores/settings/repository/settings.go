package repository

import (
	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/domain"
	"github.com/rafflehouse/goapi/domain/settings"
	"github.com/rafflehouse/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type settingsImpl struct {
	q query.Mongo
}

func NewSettings(q query.Mongo) settings.Repo {
	return &settingsImpl{q}
}

func (im *settingsImpl) Get(c ctx.Ctx) (*settings.Settings, error) {
	res := settings.Settings{}
	if err := im.q.FindOne(c, domain.TableSettings, bson.M{"key": settings.Key}, &res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &res, nil
}

func (im *settingsImpl) Upsert(c ctx.Ctx, value *settings.Settings) error {
	value.Key = settings.Key
	if err := im.q.Upsert(c, domain.TableSettings, bson.M{"key": settings.Key}, value); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}
