package usecase

import (
	"math/big"

	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/base/log"
	"github.com/rafflehouse/goapi/base/ptr"
	"github.com/rafflehouse/goapi/domain"
	"github.com/rafflehouse/goapi/domain/event"
)

// FulfillRandomness consumes the pending request and derives the winner from
// the delivered value. Unknown and replayed request ids are ignored, so the
// oracle can safely redeliver.
func (im *listingImpl) FulfillRandomness(c ctx.Ctx, requestId domain.RandomnessRequestId, value *big.Int) error {
	return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		id, err := im.pendingRequest.Consume(c, requestId)
		if err == domain.ErrNotFound {
			c.WithField("requestId", requestId).Info("unknown or replayed randomness request, skipping")
			return nil
		} else if err != nil {
			c.WithField("err", err).Error("pendingRequest.Consume failed")
			return err
		}

		l, err := im.listing.FindOne(c, id)
		if err != nil {
			return err
		}
		if l.Winner != nil {
			// the winner is write-once
			return nil
		}

		idx := new(big.Int).Mod(value, big.NewInt(l.MaxTickets)).Int64()
		winner, err := l.BuyerOfTicket(idx)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "listingId": id, "ticketIndex": idx}).Error("BuyerOfTicket failed")
			return err
		}

		l.Winner = &winner
		if err := im.listing.Update(c, l); err != nil {
			c.WithField("err", err).Error("listing.Update failed")
			return err
		}

		if err := im.event.Create(c, &event.Event{
			Type:        event.TypeFulfillListing,
			ListingId:   id,
			Account:     winner,
			TicketIndex: ptr.Int64(idx),
			CreatedAt:   timeNow(),
		}); err != nil {
			c.WithField("err", err).Error("event.Create failed")
			return err
		}
		return nil
	})
}
