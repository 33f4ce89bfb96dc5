package usecase

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/domain"
	"github.com/rafflehouse/goapi/domain/listing"
)

func TestBuyTicketsTransfersCostAndRecordsInterval(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	l := openListing(1, 100, "100")
	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)

	var updated *listing.Listing
	f.listing.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { updated = args.Get(1).(*listing.Listing) }).
		Return(nil)
	f.event.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.wallet.On("Transfer", mock.Anything, testCurrency, testBuyer, testEscrow, big.NewInt(2000)).
		Return(nil)

	req.NoError(f.uc.BuyTickets(c, testBuyer, 1, 20))

	req.NotNil(updated)
	req.Equal(int64(20), updated.TicketsBought)
	req.Len(updated.Tickets, 1)
	req.Equal(int64(0), updated.Tickets[0].Start)
	req.Equal(testBuyer.ToLower(), updated.Tickets[0].Buyer)
	req.False(updated.RandomnessRequested)

	// one event per minted ticket index
	f.event.AssertNumberOfCalls(t, "Create", 20)
	f.wallet.AssertExpectations(t)
	f.oracle.AssertNotCalled(t, "RequestRandomness", mock.Anything)
}

func TestBuyTicketsRejectsBadAmounts(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	req.ErrorIs(f.uc.BuyTickets(c, testBuyer, 1, 0), domain.ErrBuyAmountTooLow)
	req.ErrorIs(f.uc.BuyTickets(c, testBuyer, 1, -5), domain.ErrBuyAmountTooLow)
	f.listing.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
}

func TestBuyTicketsEnforcesPerAddressCap(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	// 20% of 100 tickets leaves room for exactly 20 per address
	l := openListing(1, 100, "100")
	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)

	err := f.uc.BuyTickets(c, testBuyer, 1, 21)
	req.ErrorIs(err, domain.ErrMaxTicketsBoughtByAddress)
	f.wallet.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBuyTicketsCapCountsEarlierPurchases(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	l := openListing(1, 100, "100")
	l.RecordPurchase(testBuyer, 15)
	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)

	err := f.uc.BuyTickets(c, testBuyer, 1, 6)
	req.ErrorIs(err, domain.ErrMaxTicketsBoughtByAddress)
}

func TestBuyTicketsExpiredListing(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	l := openListing(1, 100, "100")
	l.CreationTime = time.Now().Add(-48 * time.Hour)
	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)

	req.ErrorIs(f.uc.BuyTickets(c, testBuyer, 1, 1), domain.ErrListingExpired)
}

func TestBuyTicketsSoldOutListing(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	l := openListing(1, 100, "100")
	l.RandomnessRequested = true
	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)

	req.ErrorIs(f.uc.BuyTickets(c, testBuyer, 1, 1), domain.ErrAllTicketsBought)
}

func TestBuyTicketsOverRemaining(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	l := openListing(1, 10, "100")
	l.RecordPurchase("0x00000000000000000000000000000000000eeee1", 2)
	l.RecordPurchase("0x00000000000000000000000000000000000eeee2", 2)
	l.RecordPurchase("0x00000000000000000000000000000000000eeee3", 2)
	l.RecordPurchase("0x00000000000000000000000000000000000eeee4", 2)
	l.RecordPurchase("0x00000000000000000000000000000000000eeee5", 1)
	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)

	req.ErrorIs(f.uc.BuyTickets(c, testBuyer, 1, 2), domain.ErrAllTicketsBought)
}

func TestBuyLastTicketRequestsRandomnessOnce(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	l := openListing(1, 100, "100")
	for _, buyer := range []domain.Address{
		"0x00000000000000000000000000000000000eeee1",
		"0x00000000000000000000000000000000000eeee2",
		"0x00000000000000000000000000000000000eeee3",
		"0x00000000000000000000000000000000000eeee4",
	} {
		l.RecordPurchase(buyer, 20)
	}
	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)

	requestId := domain.RandomnessRequestId("req-1")
	f.oracle.On("RequestRandomness", mock.Anything).Return(requestId, nil).Once()
	f.oracle.On("Dispatch", mock.Anything, requestId).Once()

	var pending *listing.PendingRequest
	f.pendingRequest.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { pending = args.Get(1).(*listing.PendingRequest) }).
		Return(nil)

	var updated *listing.Listing
	f.listing.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { updated = args.Get(1).(*listing.Listing) }).
		Return(nil)
	f.event.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.wallet.On("Transfer", mock.Anything, testCurrency, testBuyer, testEscrow, big.NewInt(2000)).
		Return(nil)

	req.NoError(f.uc.BuyTickets(c, testBuyer, 1, 20))

	req.NotNil(updated)
	req.True(updated.IsSoldOut())
	req.True(updated.RandomnessRequested)
	req.NotNil(pending)
	req.Equal(requestId, pending.RequestId)
	req.Equal(domain.ListingId(1), pending.ListingId)

	// 20 buy_ticket events plus all_tickets_bought and request_randomness
	f.event.AssertNumberOfCalls(t, "Create", 22)
	f.oracle.AssertExpectations(t)
}

func TestBuyLastTicketFailedTransactionDoesNotDispatch(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	l := openListing(1, 100, "100")
	for _, buyer := range []domain.Address{
		"0x00000000000000000000000000000000000eeee1",
		"0x00000000000000000000000000000000000eeee2",
		"0x00000000000000000000000000000000000eeee3",
		"0x00000000000000000000000000000000000eeee4",
	} {
		l.RecordPurchase(buyer, 20)
	}
	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)

	f.oracle.On("RequestRandomness", mock.Anything).
		Return(domain.RandomnessRequestId("req-1"), nil)
	f.pendingRequest.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.listing.On("Update", mock.Anything, mock.Anything).Return(domain.ErrNotFound)

	req.Error(f.uc.BuyTickets(c, testBuyer, 1, 20))

	// nothing was committed, so the delivery must never be scheduled
	f.oracle.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestBuyTicketsWithSwapRefundsDust(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	l := openListing(1, 100, "100")
	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)

	desc := domain.SwapDescription{
		SrcCurrency: "0x00000000000000000000000000000000005c0001",
		DstCurrency: testCurrency,
		DstReceiver: testEscrow,
		Amount:      "300",
	}
	f.swapper.On("Swap", mock.Anything, testBuyer, desc, []byte(nil)).
		Return(big.NewInt(250), nil)

	f.listing.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.event.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.wallet.On("Transfer", mock.Anything, testCurrency, testEscrow, testBuyer, big.NewInt(50)).
		Return(nil)

	bought, err := f.uc.BuyTicketsWithSwap(c, testBuyer, 1, listing.SwapBuyParams{
		Description:   desc,
		PaymentAmount: "300",
	})
	req.NoError(err)
	req.Equal(int64(2), bought)
	req.Equal(int64(2), l.TicketsBought)
	f.wallet.AssertExpectations(t)
}

func TestBuyTicketsWithSwapRejectsBadDescriptions(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	good := domain.SwapDescription{
		SrcCurrency: "0x00000000000000000000000000000000005c0001",
		DstCurrency: testCurrency,
		DstReceiver: testEscrow,
		Amount:      "300",
	}

	cases := []struct {
		name    string
		mutate  func(*domain.SwapDescription)
		payment string
		want    error
	}{
		{
			name:    "wrong destination currency",
			mutate:  func(d *domain.SwapDescription) { d.DstCurrency = d.SrcCurrency },
			payment: "300",
			want:    domain.ErrInvalidSwapDescription,
		},
		{
			name:    "wrong receiver",
			mutate:  func(d *domain.SwapDescription) { d.DstReceiver = testBuyer },
			payment: "300",
			want:    domain.ErrInvalidSwapDescription,
		},
		{
			name:    "source equals settlement currency",
			mutate:  func(d *domain.SwapDescription) { d.SrcCurrency = testCurrency },
			payment: "300",
			want:    domain.ErrInvalidSwapDescription,
		},
		{
			name:    "declared payment does not match swap input",
			mutate:  func(d *domain.SwapDescription) {},
			payment: "299",
			want:    domain.ErrInvalidMsgValue,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			desc := good
			tt.mutate(&desc)
			_, err := f.uc.BuyTicketsWithSwap(c, testBuyer, 1, listing.SwapBuyParams{
				Description:   desc,
				PaymentAmount: tt.payment,
			})
			req.ErrorIs(err, tt.want)
			f.swapper.AssertNotCalled(t, "Swap", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestBuyTicketsWithSwapTooSmallForOneTicket(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	l := openListing(1, 100, "100")
	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)

	desc := domain.SwapDescription{
		SrcCurrency: "0x00000000000000000000000000000000005c0001",
		DstCurrency: testCurrency,
		DstReceiver: testEscrow,
		Amount:      "90",
	}
	f.swapper.On("Swap", mock.Anything, testBuyer, desc, []byte(nil)).
		Return(big.NewInt(90), nil)

	_, err := f.uc.BuyTicketsWithSwap(c, testBuyer, 1, listing.SwapBuyParams{
		Description:   desc,
		PaymentAmount: "90",
	})
	req.ErrorIs(err, domain.ErrBuyAmountTooLow)
}

func TestBuyTicketsWithSwapHugeProceedsRejected(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	l := openListing(1, 100, "1")
	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)

	// proceeds past int64 range must fail capacity checks, not wrap the
	// ticket count negative and mint a giant dust refund from escrow
	proceeds := new(big.Int).Lsh(domain.Big1, 63)
	desc := domain.SwapDescription{
		SrcCurrency: "0x00000000000000000000000000000000005c0001",
		DstCurrency: testCurrency,
		DstReceiver: testEscrow,
		Amount:      proceeds.String(),
	}
	f.swapper.On("Swap", mock.Anything, testBuyer, desc, []byte(nil)).
		Return(proceeds, nil)

	_, err := f.uc.BuyTicketsWithSwap(c, testBuyer, 1, listing.SwapBuyParams{
		Description:   desc,
		PaymentAmount: proceeds.String(),
	})
	req.ErrorIs(err, domain.ErrAllTicketsBought)
	req.Equal(int64(0), l.TicketsBought)
	f.listing.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.wallet.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
