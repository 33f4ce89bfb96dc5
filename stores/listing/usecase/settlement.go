package usecase

import (
	"math/big"

	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/base/feemath"
	"github.com/rafflehouse/goapi/base/ptr"
	"github.com/rafflehouse/goapi/domain"
	"github.com/rafflehouse/goapi/domain/event"
	"github.com/rafflehouse/goapi/domain/listing"
)

// maybeRemove deletes a listing once nothing is left to hand out: both
// settlement legs claimed, or the item reclaimed and every bought ticket
// refunded. Ids stay burned since the counter never rewinds.
func (im *listingImpl) maybeRemove(c ctx.Ctx, l *listing.Listing) error {
	drained := l.ItemClaimed && l.TokensClaimed
	if l.Winner == nil {
		drained = l.ItemClaimed && l.TicketsReclaimed == l.TicketsBought
	}
	if !drained {
		return nil
	}
	if err := im.listing.Delete(c, l.Id); err != nil {
		c.WithField("err", err).Error("listing.Delete failed")
		return err
	}
	return nil
}

// ClaimItems hands the raffled items of fulfilled listings to the winner.
// The whole batch settles in one transaction, all-or-nothing.
func (im *listingImpl) ClaimItems(c ctx.Ctx, caller domain.Address, ids []domain.ListingId, recipient domain.Address) error {
	return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		for _, id := range ids {
			l, err := im.listing.FindOne(c, id)
			if err != nil {
				return err
			}
			if l.Winner == nil {
				return domain.ErrListingNotFulfilled
			}
			if !caller.Equals(*l.Winner) {
				return domain.ErrCallerNotWinner
			}
			if l.ItemClaimed {
				return domain.ErrItemAlreadyClaimed
			}

			l.ItemClaimed = true
			if err := im.listing.Update(c, l); err != nil {
				c.WithField("err", err).Error("listing.Update failed")
				return err
			}
			if err := im.custody.Transfer(c, l.Item, im.escrow, recipient); err != nil {
				return err
			}
			if err := im.event.Create(c, &event.Event{
				Type:      event.TypeReceiveItem,
				ListingId: id,
				Account:   recipient.ToLower(),
				CreatedAt: timeNow(),
			}); err != nil {
				c.WithField("err", err).Error("event.Create failed")
				return err
			}
			if err := im.maybeRemove(c, l); err != nil {
				return err
			}
		}
		return nil
	})
}

// ClaimTokens pays the owner of fulfilled listings their sale proceeds net of
// the snapshotted platform fee and royalty.
func (im *listingImpl) ClaimTokens(c ctx.Ctx, caller domain.Address, ids []domain.ListingId, recipient domain.Address) error {
	cfg, err := im.settings.Get(c)
	if err != nil {
		c.WithField("err", err).Error("settings.Get failed")
		return err
	}

	return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		for _, id := range ids {
			l, err := im.listing.FindOne(c, id)
			if err != nil {
				return err
			}
			if l.Winner == nil {
				return domain.ErrListingNotFulfilled
			}
			if !caller.Equals(l.Owner) {
				return domain.ErrCallerNotOwner
			}
			if l.TokensClaimed {
				return domain.ErrTokensAlreadyClaimed
			}

			feeRate, err := domain.ParseRate(l.FeeRate)
			if err != nil {
				c.WithField("err", err).Error("malformed stored fee rate")
				return err
			}
			royaltyRate, err := domain.ParseRate(l.RoyaltyRate)
			if err != nil {
				c.WithField("err", err).Error("malformed stored royalty rate")
				return err
			}

			gross := new(big.Int).Mul(l.PriceBig(), big.NewInt(l.MaxTickets))
			fee, royalty, net := feemath.Split(gross, feeRate, royaltyRate)

			l.TokensClaimed = true
			if err := im.listing.Update(c, l); err != nil {
				c.WithField("err", err).Error("listing.Update failed")
				return err
			}

			if fee.Sign() > 0 {
				if err := im.payout(c, id, event.TypeCollectFee, cfg.FeeCollector, fee); err != nil {
					return err
				}
			}
			if royalty.Sign() > 0 && !l.RoyaltyReceiver.IsEmpty() {
				if err := im.payout(c, id, event.TypeCollectRoyalty, l.RoyaltyReceiver, royalty); err != nil {
					return err
				}
			}
			if net.Sign() > 0 {
				if err := im.payout(c, id, event.TypeReceiveTokens, recipient, net); err != nil {
					return err
				}
			}
			if err := im.maybeRemove(c, l); err != nil {
				return err
			}
		}
		return nil
	})
}

func (im *listingImpl) payout(c ctx.Ctx, id domain.ListingId, t event.Type, to domain.Address, amount *big.Int) error {
	if err := im.wallet.Transfer(c, im.currency, im.escrow, to, amount); err != nil {
		return err
	}
	if err := im.event.Create(c, &event.Event{
		Type:      t,
		ListingId: id,
		Account:   to.ToLower(),
		Amount:    amount.String(),
		CreatedAt: timeNow(),
	}); err != nil {
		c.WithField("err", err).Error("event.Create failed")
		return err
	}
	return nil
}

// checkReclaimable rejects listings that are not in the expired phase.
func checkReclaimable(l *listing.Listing) error {
	if l.Winner != nil || l.RandomnessRequested {
		return domain.ErrListingAlreadyFulfilled
	}
	if !l.IsExpired(timeNow()) {
		return domain.ErrListingNotExpired
	}
	return nil
}

// ReclaimItems returns the items of expired listings to their owner.
func (im *listingImpl) ReclaimItems(c ctx.Ctx, caller domain.Address, ids []domain.ListingId, recipient domain.Address) error {
	return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		for _, id := range ids {
			l, err := im.listing.FindOne(c, id)
			if err != nil {
				return err
			}
			if err := checkReclaimable(l); err != nil {
				return err
			}
			if !caller.Equals(l.Owner) {
				return domain.ErrCallerNotOwner
			}
			if l.ItemClaimed {
				return domain.ErrItemAlreadyClaimed
			}

			l.ItemClaimed = true
			if err := im.listing.Update(c, l); err != nil {
				c.WithField("err", err).Error("listing.Update failed")
				return err
			}
			if err := im.custody.Transfer(c, l.Item, im.escrow, recipient); err != nil {
				return err
			}
			if err := im.event.Create(c, &event.Event{
				Type:      event.TypeReclaimItem,
				ListingId: id,
				Account:   recipient.ToLower(),
				CreatedAt: timeNow(),
			}); err != nil {
				c.WithField("err", err).Error("event.Create failed")
				return err
			}
			if err := im.maybeRemove(c, l); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReclaimTokens refunds a buyer's ticket payments on expired listings.
// Refunds are independent per buyer; a second reclaim by the same buyer
// fails with ErrNothingToReclaim.
func (im *listingImpl) ReclaimTokens(c ctx.Ctx, buyer domain.Address, ids []domain.ListingId, recipient domain.Address) error {
	return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		for _, id := range ids {
			l, err := im.listing.FindOne(c, id)
			if err != nil {
				return err
			}
			if err := checkReclaimable(l); err != nil {
				return err
			}

			n := l.TicketsBoughtBy[buyer.ToLower()]
			if n == 0 {
				return domain.ErrNothingToReclaim
			}

			refund := new(big.Int).Mul(l.PriceBig(), big.NewInt(n))
			l.TicketsBoughtBy[buyer.ToLower()] = 0
			l.TicketsReclaimed += n
			if err := im.listing.Update(c, l); err != nil {
				c.WithField("err", err).Error("listing.Update failed")
				return err
			}
			if err := im.wallet.Transfer(c, im.currency, im.escrow, recipient, refund); err != nil {
				return err
			}
			if err := im.event.Create(c, &event.Event{
				Type:        event.TypeReclaimTokens,
				ListingId:   id,
				Account:     recipient.ToLower(),
				TicketCount: ptr.Int64(n),
				Amount:      refund.String(),
				CreatedAt:   timeNow(),
			}); err != nil {
				c.WithField("err", err).Error("event.Create failed")
				return err
			}
			if err := im.maybeRemove(c, l); err != nil {
				return err
			}
		}
		return nil
	})
}
