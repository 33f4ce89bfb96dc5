package usecase

import (
	"math/big"

	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/base/feemath"
	"github.com/rafflehouse/goapi/base/log"
	"github.com/rafflehouse/goapi/base/ptr"
	"github.com/rafflehouse/goapi/domain"
	"github.com/rafflehouse/goapi/domain/event"
	"github.com/rafflehouse/goapi/domain/listing"
)

func (im *listingImpl) BuyTickets(c ctx.Ctx, buyer domain.Address, id domain.ListingId, amount int64) error {
	if amount <= 0 {
		return domain.ErrBuyAmountTooLow
	}

	var requestId domain.RandomnessRequestId
	err := im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		l, err := im.listing.FindOne(c, id)
		if err != nil {
			return err
		}

		if err := im.checkPurchasable(c, l, buyer, amount); err != nil {
			return err
		}

		cost := new(big.Int).Mul(l.PriceBig(), big.NewInt(amount))
		if requestId, err = im.recordPurchase(c, l, buyer, amount); err != nil {
			return err
		}
		return im.wallet.Transfer(c, im.currency, buyer, im.escrow, cost)
	})
	if err != nil {
		return err
	}
	// the delivery must not start before the pending request is committed
	if requestId != "" {
		im.oracle.Dispatch(c, requestId)
	}
	return nil
}

func (im *listingImpl) BuyTicketsWithSwap(c ctx.Ctx, buyer domain.Address, id domain.ListingId, params listing.SwapBuyParams) (int64, error) {
	desc := params.Description
	if !desc.DstCurrency.Equals(im.currency) ||
		!desc.DstReceiver.Equals(im.escrow) ||
		desc.SrcCurrency.Equals(im.currency) {
		return 0, domain.ErrInvalidSwapDescription
	}
	// the declared payment must match the swap input exactly
	if params.PaymentAmount != desc.Amount {
		return 0, domain.ErrInvalidMsgValue
	}
	if _, err := domain.ParseAmount(desc.Amount); err != nil {
		return 0, domain.ErrInvalidSwapDescription
	}

	var (
		bought    int64
		requestId domain.RandomnessRequestId
	)
	err := im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		l, err := im.listing.FindOne(c, id)
		if err != nil {
			return err
		}

		received, err := im.swapper.Swap(c, buyer, desc, params.Payload)
		if err != nil {
			return err
		}

		// compare as big.Int before narrowing: huge swap proceeds must not
		// wrap the ticket count
		price := l.PriceBig()
		quo := new(big.Int).Quo(received, price)
		if quo.Sign() <= 0 {
			return domain.ErrBuyAmountTooLow
		}
		if quo.Cmp(big.NewInt(l.Remaining())) > 0 {
			return domain.ErrAllTicketsBought
		}
		tickets := quo.Int64()

		if err := im.checkPurchasable(c, l, buyer, tickets); err != nil {
			return err
		}

		if requestId, err = im.recordPurchase(c, l, buyer, tickets); err != nil {
			return err
		}

		// refund swap dust that does not cover a whole ticket
		cost := new(big.Int).Mul(price, big.NewInt(tickets))
		if dust := new(big.Int).Sub(received, cost); dust.Sign() > 0 {
			if err := im.wallet.Transfer(c, im.currency, im.escrow, buyer, dust); err != nil {
				return err
			}
		}

		bought = tickets
		return nil
	})
	if err != nil {
		return 0, err
	}
	if requestId != "" {
		im.oracle.Dispatch(c, requestId)
	}
	return bought, nil
}

// checkPurchasable enforces phase and cap preconditions for buying amount
// tickets. The listing must still be open, have enough tickets left, and the
// buyer must stay under the per-address cap.
func (im *listingImpl) checkPurchasable(c ctx.Ctx, l *listing.Listing, buyer domain.Address, amount int64) error {
	now := timeNow()
	switch l.Status(now) {
	case listing.StatusExpired:
		return domain.ErrListingExpired
	case listing.StatusSoldOutPending, listing.StatusFulfilled:
		return domain.ErrAllTicketsBought
	}
	if amount > l.Remaining() {
		return domain.ErrAllTicketsBought
	}

	cfg, err := im.settings.Get(c)
	if err != nil {
		c.WithField("err", err).Error("settings.Get failed")
		return err
	}
	limit := feemath.PerAddressCap(l.MaxTickets, cfg.MaxTicketsPerAddressRateBig())
	if l.TicketsBoughtBy[buyer.ToLower()]+amount > limit {
		return domain.ErrMaxTicketsBoughtByAddress
	}
	return nil
}

// recordPurchase appends the ticket interval, persists the listing and emits
// one event per minted ticket index. Selling the last ticket records a
// randomness request and freezes the listing; the returned request id is
// non-empty in that case and the caller dispatches it after the transaction
// commits, never inside it.
func (im *listingImpl) recordPurchase(c ctx.Ctx, l *listing.Listing, buyer domain.Address, amount int64) (domain.RandomnessRequestId, error) {
	now := timeNow()
	start := l.RecordPurchase(buyer, amount)

	var requestId domain.RandomnessRequestId
	if l.IsSoldOut() {
		id, err := im.oracle.RequestRandomness(c)
		if err != nil {
			c.WithField("err", err).Error("oracle.RequestRandomness failed")
			return "", err
		}
		if err := im.pendingRequest.Create(c, &listing.PendingRequest{
			RequestId: id,
			ListingId: l.Id,
			CreatedAt: now,
		}); err != nil {
			c.WithField("err", err).Error("pendingRequest.Create failed")
			return "", err
		}
		l.RandomnessRequested = true
		requestId = id
	}

	if err := im.listing.Update(c, l); err != nil {
		c.WithField("err", err).Error("listing.Update failed")
		return "", err
	}

	for i := int64(0); i < amount; i++ {
		if err := im.event.Create(c, &event.Event{
			Type:        event.TypeBuyTicket,
			ListingId:   l.Id,
			Account:     buyer.ToLower(),
			TicketIndex: ptr.Int64(start + i),
			Amount:      l.TicketPrice,
			CreatedAt:   now,
		}); err != nil {
			c.WithField("err", err).Error("event.Create failed")
			return "", err
		}
	}

	if l.RandomnessRequested {
		for _, t := range []event.Type{event.TypeAllTicketsBought, event.TypeRequestRandomness} {
			if err := im.event.Create(c, &event.Event{
				Type:      t,
				ListingId: l.Id,
				CreatedAt: now,
			}); err != nil {
				c.WithFields(log.Fields{"err": err, "type": t}).Error("event.Create failed")
				return "", err
			}
		}
	}
	return requestId, nil
}
