package repository

import (
	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/base/database/mongoclient"
	"github.com/rafflehouse/goapi/domain"
	"github.com/rafflehouse/goapi/domain/listing"
	"github.com/rafflehouse/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type counterDoc struct {
	Name string `bson:"name"`
	Seq  int64  `bson:"seq"`
}

type listingImpl struct {
	q query.Mongo
}

func NewListing(q query.Mongo) listing.Repo {
	return &listingImpl{q}
}

func (im *listingImpl) NextId(c ctx.Ctx) (domain.ListingId, error) {
	res := counterDoc{}
	selector := counterDoc{Name: string(domain.TableListings)}
	if err := im.q.Increment(c, domain.TableCounters, bson.M{"name": selector.Name}, &res, "seq", int64(1)); err != nil {
		c.WithField("err", err).Error("q.Increment failed")
		return 0, err
	}
	return domain.ListingId(res.Seq), nil
}

func (im *listingImpl) Create(c ctx.Ctx, value *listing.Listing) error {
	if err := im.q.Insert(c, domain.TableListings, value); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *listingImpl) FindOne(c ctx.Ctx, id domain.ListingId) (*listing.Listing, error) {
	res := listing.Listing{}
	if err := im.q.FindOne(c, domain.TableListings, bson.M{"id": id}, &res); err == query.ErrNotFound {
		return nil, domain.ErrListingNotExists
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &res, nil
}

func (im *listingImpl) FindAll(c ctx.Ctx, optFns ...listing.FindAllOptionsFunc) ([]listing.Listing, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("listing.GetFindAllOptions failed")
		return nil, err
	}

	offset := int32(0)
	limit := int32(0)
	sort := "-id"

	if opts.Offset != nil {
		offset = *opts.Offset
	}

	if opts.Limit != nil {
		limit = *opts.Limit
	}

	if opts.SortBy != nil && opts.SortDir != nil {
		if *opts.SortDir == domain.SortDirDesc {
			sort = "-" + *opts.SortBy
		} else {
			sort = *opts.SortBy
		}
	}

	qry, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	res := []listing.Listing{}
	if err := im.q.Search(c, domain.TableListings, int(offset), int(limit), sort, qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *listingImpl) Update(c ctx.Ctx, value *listing.Listing) error {
	// full replacement so cleared fields are persisted too
	if err := im.q.Upsert(c, domain.TableListings, bson.M{"id": value.Id}, value); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *listingImpl) Delete(c ctx.Ctx, id domain.ListingId) error {
	if err := im.q.Remove(c, domain.TableListings, bson.M{"id": id}); err == query.ErrNotFound {
		return domain.ErrListingNotExists
	} else if err != nil {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}
	return nil
}
