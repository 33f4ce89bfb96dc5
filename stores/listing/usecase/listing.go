package usecase

import (
	"time"

	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/domain"
	"github.com/rafflehouse/goapi/domain/event"
	"github.com/rafflehouse/goapi/domain/listing"
	"github.com/rafflehouse/goapi/domain/settings"
	"github.com/rafflehouse/goapi/service/query"
)

var timeNow = time.Now

type ListingUseCaseCfg struct {
	Listing        listing.Repo
	PendingRequest listing.PendingRequestRepo
	Settings       settings.Reader
	Event          event.Repo
	Wallet         domain.Wallet
	Custody        domain.Custody
	Royalty        domain.RoyaltyRegistry
	Swapper        domain.Swapper
	Oracle         domain.RandomnessOracle
	Q              query.Mongo

	// Currency all tickets are priced and settled in
	Currency domain.Address
	// Escrow is the internal party holding listed items and ticket proceeds
	Escrow domain.Address
}

type listingImpl struct {
	listing        listing.Repo
	pendingRequest listing.PendingRequestRepo
	settings       settings.Reader
	event          event.Repo
	wallet         domain.Wallet
	custody        domain.Custody
	royalty        domain.RoyaltyRegistry
	swapper        domain.Swapper
	oracle         domain.RandomnessOracle
	q              query.Mongo
	currency       domain.Address
	escrow         domain.Address
}

func NewListing(cfg *ListingUseCaseCfg) listing.UseCase {
	return &listingImpl{
		listing:        cfg.Listing,
		pendingRequest: cfg.PendingRequest,
		settings:       cfg.Settings,
		event:          cfg.Event,
		wallet:         cfg.Wallet,
		custody:        cfg.Custody,
		royalty:        cfg.Royalty,
		swapper:        cfg.Swapper,
		oracle:         cfg.Oracle,
		q:              cfg.Q,
		currency:       cfg.Currency,
		escrow:         cfg.Escrow,
	}
}

func (im *listingImpl) Get(c ctx.Ctx, id domain.ListingId) (*listing.Listing, error) {
	return im.listing.FindOne(c, id)
}

func (im *listingImpl) FindAll(c ctx.Ctx, optFns ...listing.FindAllOptionsFunc) ([]listing.Listing, error) {
	return im.listing.FindAll(c, optFns...)
}

func (im *listingImpl) validateListingParams(cfg *settings.Settings, maxTickets int64, ticketPrice string, duration int64) error {
	if maxTickets < 2 {
		return domain.ErrInvalidTicketCount
	}
	price, err := domain.ParseAmount(ticketPrice)
	if err != nil || price.Sign() == 0 {
		return domain.ErrInvalidPrice
	}
	if duration < cfg.MinDuration {
		return domain.ErrDurationTooShort
	}
	if duration > cfg.MaxDuration {
		return domain.ErrDurationTooLong
	}
	return nil
}

// createListing snapshots fee and royalty economics, assigns the id and
// writes the listing plus its creation event. The item must already be held
// by the escrow party.
func (im *listingImpl) createListing(c ctx.Ctx, cfg *settings.Settings, owner domain.Address, item domain.Item, maxTickets int64, ticketPrice string, duration int64, now time.Time) (domain.ListingId, error) {
	royaltyReceiver, royaltyRate, err := im.royalty.RateOf(c, item.Collection)
	if err != nil {
		c.WithField("err", err).Error("royalty.RateOf failed")
		return 0, err
	}

	id, err := im.listing.NextId(c)
	if err != nil {
		c.WithField("err", err).Error("listing.NextId failed")
		return 0, err
	}

	l := &listing.Listing{
		Id:              id,
		Item:            item,
		Owner:           owner.ToLower(),
		MaxTickets:      maxTickets,
		TicketPrice:     ticketPrice,
		FeeRate:         cfg.FeeRate,
		RoyaltyRate:     royaltyRate.String(),
		RoyaltyReceiver: royaltyReceiver.ToLower(),
		CreationTime:    now,
		Duration:        duration,
	}
	if err := im.listing.Create(c, l); err != nil {
		c.WithField("err", err).Error("listing.Create failed")
		return 0, err
	}

	if err := im.event.Create(c, &event.Event{
		Type:      event.TypeListItem,
		ListingId: id,
		Account:   owner.ToLower(),
		CreatedAt: now,
	}); err != nil {
		c.WithField("err", err).Error("event.Create failed")
		return 0, err
	}
	return id, nil
}

func (im *listingImpl) List(c ctx.Ctx, owner domain.Address, items []listing.ListItemParams) ([]domain.ListingId, error) {
	if len(items) == 0 {
		return nil, domain.ErrBadParamInput
	}

	cfg, err := im.settings.Get(c)
	if err != nil {
		c.WithField("err", err).Error("settings.Get failed")
		return nil, err
	}

	for _, item := range items {
		if err := im.validateListingParams(cfg, item.MaxTickets, item.TicketPrice, item.Duration); err != nil {
			return nil, err
		}
	}

	now := timeNow()
	ids := []domain.ListingId{}
	err = im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		ids = ids[:0]
		for _, item := range items {
			if err := im.custody.Transfer(c, item.Item, owner, im.escrow); err != nil {
				return err
			}
			id, err := im.createListing(c, cfg, owner, item.Item, item.MaxTickets, item.TicketPrice, item.Duration, now)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (im *listingImpl) MintAndList(c ctx.Ctx, owner domain.Address, params listing.MintAndListParams) ([]domain.ListingId, error) {
	if len(params.Items) == 0 {
		return nil, domain.ErrBadParamInput
	}

	cfg, err := im.settings.Get(c)
	if err != nil {
		c.WithField("err", err).Error("settings.Get failed")
		return nil, err
	}

	for _, item := range params.Items {
		if err := im.validateListingParams(cfg, item.MaxTickets, item.TicketPrice, item.Duration); err != nil {
			return nil, err
		}
	}

	now := timeNow()
	ids := []domain.ListingId{}
	err = im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		ids = ids[:0]

		collection := domain.EmptyAddress
		if params.Collection != nil {
			collection = params.Collection.ToLower()
		} else {
			deployed, err := im.custody.DeployCollection(c, params.CollectionName, params.CollectionSymbol, owner)
			if err != nil {
				c.WithField("err", err).Error("custody.DeployCollection failed")
				return err
			}
			collection = deployed
		}

		// flat platform fee, charged once per call regardless of batch size
		if mintFee := cfg.MintFeeBig(); mintFee.Sign() > 0 {
			if err := im.wallet.Transfer(c, im.currency, owner, cfg.FeeCollector, mintFee); err != nil {
				return err
			}
			if err := im.event.Create(c, &event.Event{
				Type:      event.TypeCollectFee,
				Account:   cfg.FeeCollector.ToLower(),
				Amount:    mintFee.String(),
				CreatedAt: now,
			}); err != nil {
				c.WithField("err", err).Error("event.Create failed")
				return err
			}
		}

		for _, item := range params.Items {
			tokenId, err := im.custody.Mint(c, collection, im.escrow)
			if err != nil {
				c.WithField("err", err).Error("custody.Mint failed")
				return err
			}
			id, err := im.createListing(c, cfg, owner, domain.Item{Collection: collection, TokenId: tokenId}, item.MaxTickets, item.TicketPrice, item.Duration, now)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
