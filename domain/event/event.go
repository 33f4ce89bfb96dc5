package event

import (
	"time"

	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/domain"
)

type Type string

const (
	TypeListItem          Type = "list_item"
	TypeBuyTicket         Type = "buy_ticket"
	TypeAllTicketsBought  Type = "all_tickets_bought"
	TypeRequestRandomness Type = "request_randomness"
	TypeFulfillListing    Type = "fulfill_listing"
	TypeReceiveItem       Type = "receive_item"
	TypeReceiveTokens     Type = "receive_tokens"
	TypeCollectFee        Type = "collect_fee"
	TypeCollectRoyalty    Type = "collect_royalty"
	TypeReclaimTokens     Type = "reclaim_tokens"
	TypeReclaimItem       Type = "reclaim_item"
	TypeUpdateSettings    Type = "update_settings"
)

// Event is one append-only notification record for external indexing.
// Every listing state transition produces at least one.
type Event struct {
	Type      Type             `bson:"type" json:"type"`
	ListingId domain.ListingId `bson:"listingId,omitempty" json:"listingId,omitempty"`
	Account   domain.Address   `bson:"account,omitempty" json:"account,omitempty"`
	// TicketIndex is set on buy_ticket records, one per minted ticket index.
	TicketIndex *int64 `bson:"ticketIndex,omitempty" json:"ticketIndex,omitempty"`
	// TicketCount is set on reclaim_tokens records.
	TicketCount *int64 `bson:"ticketCount,omitempty" json:"ticketCount,omitempty"`
	// Amount is a wei-scale decimal string where a value transfer occurred.
	Amount string `bson:"amount,omitempty" json:"amount,omitempty"`
	// Field/OldValue/NewValue describe update_settings records.
	Field     string    `bson:"field,omitempty" json:"field,omitempty"`
	OldValue  string    `bson:"oldValue,omitempty" json:"oldValue,omitempty"`
	NewValue  string    `bson:"newValue,omitempty" json:"newValue,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type FindAllOptions struct {
	Offset    *int32            `bson:"-"`
	Limit     *int32            `bson:"-"`
	ListingId *domain.ListingId `bson:"listingId"`
	Type      *Type             `bson:"type"`
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithListingId(id domain.ListingId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ListingId = &id
		return nil
	}
}

func WithType(t Type) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Type = &t
		return nil
	}
}

type Repo interface {
	Create(ctx.Ctx, *Event) error
	FindAll(ctx.Ctx, ...FindAllOptionsFunc) ([]Event, error)
}
