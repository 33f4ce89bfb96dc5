package listing

import (
	"math/big"
	"time"

	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/domain"
)

// Status is derived from listing state, it is never stored.
type Status string

const (
	// StatusOpen accepts ticket purchases
	StatusOpen Status = "open"
	// StatusSoldOutPending sold out, waiting for the randomness delivery
	StatusSoldOutPending Status = "soldOutPending"
	// StatusFulfilled winner chosen, waiting to be drained by claims
	StatusFulfilled Status = "fulfilled"
	// StatusExpired deadline passed without selling out, waiting for reclaims
	StatusExpired Status = "expired"
)

// Listing is one item plus its raffle parameters and sale state. Fee and
// royalty rates are snapshotted at creation time; settlement never re-reads
// live configuration, so the economics of a listing are immutable.
type Listing struct {
	Id            domain.ListingId `bson:"id" json:"id"`
	Item          domain.Item      `bson:"item" json:"item"`
	Owner         domain.Address   `bson:"owner" json:"owner"`
	MaxTickets    int64            `bson:"maxTickets" json:"maxTickets"`
	TicketPrice   string           `bson:"ticketPrice" json:"ticketPrice"`
	TicketsBought int64            `bson:"ticketsBought" json:"ticketsBought"`

	// FeeRate and RoyaltyRate are parts-per-1e18 of gross sale value.
	FeeRate         string         `bson:"feeRate" json:"feeRate"`
	RoyaltyRate     string         `bson:"royaltyRate" json:"royaltyRate"`
	RoyaltyReceiver domain.Address `bson:"royaltyReceiver" json:"royaltyReceiver"`

	CreationTime time.Time `bson:"creationTime" json:"creationTime"`
	// Duration in seconds; expiry = CreationTime + Duration.
	Duration int64 `bson:"duration" json:"duration"`

	Winner              *domain.Address `bson:"winner,omitempty" json:"winner,omitempty"`
	RandomnessRequested bool            `bson:"randomnessRequested" json:"randomnessRequested"`
	ItemClaimed         bool            `bson:"itemClaimed" json:"itemClaimed"`
	TokensClaimed       bool            `bson:"tokensClaimed" json:"tokensClaimed"`

	// Tickets is the coalesced-interval ledger: one range per purchase.
	Tickets TicketLedger `bson:"tickets" json:"-"`
	// TicketsBoughtBy tracks per-buyer counts for the per-address cap and
	// for pro-rata refunds. Zeroed per buyer as reclaims complete.
	TicketsBoughtBy  map[domain.Address]int64 `bson:"ticketsBoughtBy" json:"-"`
	TicketsReclaimed int64                    `bson:"ticketsReclaimed" json:"-"`
}

func (l *Listing) ExpiresAt() time.Time {
	return l.CreationTime.Add(time.Duration(l.Duration) * time.Second)
}

func (l *Listing) IsExpired(now time.Time) bool {
	return now.After(l.ExpiresAt())
}

func (l *Listing) IsSoldOut() bool {
	return l.TicketsBought == l.MaxTickets
}

func (l *Listing) Remaining() int64 {
	return l.MaxTickets - l.TicketsBought
}

func (l *Listing) Status(now time.Time) Status {
	switch {
	case l.Winner != nil:
		return StatusFulfilled
	case l.RandomnessRequested:
		return StatusSoldOutPending
	case l.IsExpired(now):
		return StatusExpired
	default:
		return StatusOpen
	}
}

// PriceBig parses the stored ticket price. Prices are validated at listing
// creation, so a malformed stored price is a programming error.
func (l *Listing) PriceBig() *big.Int {
	v, err := domain.ParseAmount(l.TicketPrice)
	if err != nil {
		panic("listing: malformed stored ticket price")
	}
	return v
}

// RecordPurchase appends one ticket interval for buyer and returns the index
// of the first ticket in it. The ledger stays sorted by construction since
// purchases always extend the end.
func (l *Listing) RecordPurchase(buyer domain.Address, amount int64) int64 {
	start := l.TicketsBought
	l.Tickets = l.Tickets.Append(start, buyer.ToLower())
	l.TicketsBought += amount
	if l.TicketsBoughtBy == nil {
		l.TicketsBoughtBy = map[domain.Address]int64{}
	}
	l.TicketsBoughtBy[buyer.ToLower()] += amount
	return start
}

// BuyerOfTicket resolves the owner of ticket index i within the sold range.
func (l *Listing) BuyerOfTicket(i int64) (domain.Address, error) {
	if i < 0 || i >= l.TicketsBought {
		return "", domain.ErrNotFound
	}
	return l.Tickets.BuyerOf(i), nil
}

type FindAllOptions struct {
	SortBy  *string         `bson:"-"`
	SortDir *domain.SortDir `bson:"-"`
	Offset  *int32          `bson:"-"`
	Limit   *int32          `bson:"-"`
	Owner   *domain.Address `bson:"owner"`
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

func WithSort(sortby string, sortdir domain.SortDir) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SortBy = &sortby
		options.SortDir = &sortdir
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithOwner(address domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Owner = address.ToLowerPtr()
		return nil
	}
}

// PendingRequest maps an oracle-assigned request id to the listing waiting
// for its randomness. Created exactly once per listing, consumed exactly
// once on fulfillment.
type PendingRequest struct {
	RequestId domain.RandomnessRequestId `bson:"requestId"`
	ListingId domain.ListingId           `bson:"listingId"`
	CreatedAt time.Time                  `bson:"createdAt"`
}

type Repo interface {
	// NextId assigns the next listing id. Ids are monotonic and never reused.
	NextId(ctx.Ctx) (domain.ListingId, error)
	Create(ctx.Ctx, *Listing) error
	FindOne(ctx.Ctx, domain.ListingId) (*Listing, error)
	FindAll(ctx.Ctx, ...FindAllOptionsFunc) ([]Listing, error)
	Update(ctx.Ctx, *Listing) error
	Delete(ctx.Ctx, domain.ListingId) error
}

type PendingRequestRepo interface {
	Create(ctx.Ctx, *PendingRequest) error
	// Consume removes the request id and returns its listing, atomically.
	// A second consume of the same id returns domain.ErrNotFound.
	Consume(ctx.Ctx, domain.RandomnessRequestId) (domain.ListingId, error)
}

// ListItemParams are the caller-supplied parameters of one new listing.
type ListItemParams struct {
	Item        domain.Item `json:"item" validate:"required"`
	MaxTickets  int64       `json:"maxTickets" validate:"required"`
	TicketPrice string      `json:"ticketPrice" validate:"required"`
	// Duration in seconds
	Duration int64 `json:"duration" validate:"required"`
}

// MintItemParams describe one listing whose item is minted on the fly.
type MintItemParams struct {
	MaxTickets  int64  `json:"maxTickets" validate:"required"`
	TicketPrice string `json:"ticketPrice" validate:"required"`
	Duration    int64  `json:"duration" validate:"required"`
}

// MintAndListParams mint items into Collection (or into a freshly deployed
// one when Collection is nil) and list each of them. The flat platform mint
// fee is charged once per call regardless of batch size.
type MintAndListParams struct {
	Collection       *domain.Address `json:"collection,omitempty"`
	CollectionName   string          `json:"collectionName,omitempty"`
	CollectionSymbol string          `json:"collectionSymbol,omitempty"`
	Items            []MintItemParams `json:"items" validate:"required,dive"`
}

// SwapBuyParams describe a ticket purchase paid in a foreign currency via
// the swap adapter.
type SwapBuyParams struct {
	Description domain.SwapDescription `json:"description" validate:"required"`
	Payload     []byte                 `json:"payload,omitempty"`
	// PaymentAmount declared by the caller; must reconcile exactly with the
	// swap input or the call fails.
	PaymentAmount string `json:"paymentAmount" validate:"required"`
}

type UseCase interface {
	Get(ctx.Ctx, domain.ListingId) (*Listing, error)
	FindAll(ctx.Ctx, ...FindAllOptionsFunc) ([]Listing, error)

	// List creates one listing per params element, all-or-nothing.
	List(c ctx.Ctx, owner domain.Address, items []ListItemParams) ([]domain.ListingId, error)
	MintAndList(c ctx.Ctx, owner domain.Address, params MintAndListParams) ([]domain.ListingId, error)

	BuyTickets(c ctx.Ctx, buyer domain.Address, id domain.ListingId, amount int64) error
	// BuyTicketsWithSwap swaps the caller's payment into the settlement
	// currency, buys the maximal whole number of tickets the received
	// amount covers and refunds the dust. Returns the ticket count bought.
	BuyTicketsWithSwap(c ctx.Ctx, buyer domain.Address, id domain.ListingId, params SwapBuyParams) (int64, error)

	// FulfillRandomness consumes the pending request and writes the winner.
	// Unknown or replayed request ids are a no-op.
	FulfillRandomness(c ctx.Ctx, requestId domain.RandomnessRequestId, value *big.Int) error

	ClaimItems(c ctx.Ctx, caller domain.Address, ids []domain.ListingId, recipient domain.Address) error
	ClaimTokens(c ctx.Ctx, caller domain.Address, ids []domain.ListingId, recipient domain.Address) error
	ReclaimItems(c ctx.Ctx, caller domain.Address, ids []domain.ListingId, recipient domain.Address) error
	ReclaimTokens(c ctx.Ctx, buyer domain.Address, ids []domain.ListingId, recipient domain.Address) error
}
