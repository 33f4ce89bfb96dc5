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

const testRecipient = domain.Address("0x00000000000000000000000000000000000ffff1")

func fulfilledListing(id domain.ListingId, winner domain.Address) *listing.Listing {
	l := soldOutListing(id)
	w := winner.ToLower()
	l.Winner = &w
	return l
}

func expiredListing(id domain.ListingId) *listing.Listing {
	l := openListing(id, 100, "100")
	l.CreationTime = time.Now().Add(-48 * time.Hour)
	return l
}

func TestClaimItemsTransfersToRecipient(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	winner := domain.Address("0x00000000000000000000000000000000000eeee2")
	l := fulfilledListing(1, winner)
	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)

	var updated *listing.Listing
	f.listing.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { updated = args.Get(1).(*listing.Listing) }).
		Return(nil)
	f.custody.On("Transfer", mock.Anything, l.Item, testEscrow, testRecipient).Return(nil)
	f.event.On("Create", mock.Anything, mock.Anything).Return(nil)

	req.NoError(f.uc.ClaimItems(c, winner, []domain.ListingId{1}, testRecipient))
	req.True(updated.ItemClaimed)
	f.custody.AssertExpectations(t)
}

func TestClaimItemsPhaseAndAuthorization(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	winner := domain.Address("0x00000000000000000000000000000000000eeee2")

	t.Run("not fulfilled", func(t *testing.T) {
		f := newFixture()
		f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(openListing(1, 100, "100"), nil)
		err := f.uc.ClaimItems(c, winner, []domain.ListingId{1}, testRecipient)
		req.ErrorIs(err, domain.ErrListingNotFulfilled)
	})

	t.Run("caller is not the winner", func(t *testing.T) {
		f := newFixture()
		f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(fulfilledListing(1, winner), nil)
		err := f.uc.ClaimItems(c, testBuyer, []domain.ListingId{1}, testRecipient)
		req.ErrorIs(err, domain.ErrCallerNotWinner)
	})

	t.Run("already claimed", func(t *testing.T) {
		f := newFixture()
		l := fulfilledListing(1, winner)
		l.ItemClaimed = true
		f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)
		err := f.uc.ClaimItems(c, winner, []domain.ListingId{1}, testRecipient)
		req.ErrorIs(err, domain.ErrItemAlreadyClaimed)
	})
}

func TestClaimTokensSplitsProceedsExactly(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	// 100 tickets at 2 wei, 6% fee, no royalty: 200 gross = 12 fee + 188 net
	winner := domain.Address("0x00000000000000000000000000000000000eeee1")
	l := fulfilledListing(1, winner)
	l.TicketPrice = "2"
	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)
	f.listing.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.event.On("Create", mock.Anything, mock.Anything).Return(nil)

	feeCollector := testSettings().FeeCollector
	f.wallet.On("Transfer", mock.Anything, testCurrency, testEscrow, feeCollector, big.NewInt(12)).
		Return(nil).Once()
	f.wallet.On("Transfer", mock.Anything, testCurrency, testEscrow, testRecipient, big.NewInt(188)).
		Return(nil).Once()

	req.NoError(f.uc.ClaimTokens(c, testOwner, []domain.ListingId{1}, testRecipient))
	req.True(l.TokensClaimed)
	f.wallet.AssertExpectations(t)
}

func TestClaimTokensPaysRoyalty(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	winner := domain.Address("0x00000000000000000000000000000000000eeee1")
	l := fulfilledListing(1, winner)
	l.TicketPrice = "2"
	l.RoyaltyRate = "100000000000000000" // 10%
	l.RoyaltyReceiver = "0x00000000000000000000000000000000000ddd01"
	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)
	f.listing.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.event.On("Create", mock.Anything, mock.Anything).Return(nil)

	feeCollector := testSettings().FeeCollector
	f.wallet.On("Transfer", mock.Anything, testCurrency, testEscrow, feeCollector, big.NewInt(12)).
		Return(nil).Once()
	f.wallet.On("Transfer", mock.Anything, testCurrency, testEscrow, l.RoyaltyReceiver, big.NewInt(20)).
		Return(nil).Once()
	f.wallet.On("Transfer", mock.Anything, testCurrency, testEscrow, testRecipient, big.NewInt(168)).
		Return(nil).Once()

	req.NoError(f.uc.ClaimTokens(c, testOwner, []domain.ListingId{1}, testRecipient))
	f.wallet.AssertExpectations(t)
}

func TestClaimTokensZeroNetSkipsPayout(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	// 100% royalty is capped to what remains after the fee, leaving the
	// owner nothing; a zero-value transfer and its event must not appear
	winner := domain.Address("0x00000000000000000000000000000000000eeee1")
	l := fulfilledListing(1, winner)
	l.TicketPrice = "2"
	l.RoyaltyRate = domain.RateBase.String()
	l.RoyaltyReceiver = "0x00000000000000000000000000000000000ddd01"
	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)
	f.listing.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.event.On("Create", mock.Anything, mock.Anything).Return(nil)

	feeCollector := testSettings().FeeCollector
	f.wallet.On("Transfer", mock.Anything, testCurrency, testEscrow, feeCollector, big.NewInt(12)).
		Return(nil).Once()
	f.wallet.On("Transfer", mock.Anything, testCurrency, testEscrow, l.RoyaltyReceiver, big.NewInt(188)).
		Return(nil).Once()

	req.NoError(f.uc.ClaimTokens(c, testOwner, []domain.ListingId{1}, testRecipient))
	req.True(l.TokensClaimed)
	f.wallet.AssertNumberOfCalls(t, "Transfer", 2)
	f.wallet.AssertExpectations(t)
}

func TestClaimTokensOnlyOwner(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	winner := domain.Address("0x00000000000000000000000000000000000eeee1")
	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(fulfilledListing(1, winner), nil)

	err := f.uc.ClaimTokens(c, testBuyer, []domain.ListingId{1}, testRecipient)
	req.ErrorIs(err, domain.ErrCallerNotOwner)
}

func TestBatchClaimIsAllOrNothing(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	winner := domain.Address("0x00000000000000000000000000000000000eeee2")
	good := fulfilledListing(1, winner)
	bad := fulfilledListing(2, winner)
	bad.ItemClaimed = true

	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(good, nil)
	f.listing.On("FindOne", mock.Anything, domain.ListingId(2)).Return(bad, nil)
	f.listing.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.custody.On("Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.event.On("Create", mock.Anything, mock.Anything).Return(nil)

	err := f.uc.ClaimItems(c, winner, []domain.ListingId{1, 2}, testRecipient)
	req.ErrorIs(err, domain.ErrItemAlreadyClaimed)
}

func TestReclaimItemsRequiresExpiredPhase(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	t.Run("still open", func(t *testing.T) {
		f := newFixture()
		f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(openListing(1, 100, "100"), nil)
		err := f.uc.ReclaimItems(c, testOwner, []domain.ListingId{1}, testRecipient)
		req.ErrorIs(err, domain.ErrListingNotExpired)
	})

	t.Run("sold out pending randomness", func(t *testing.T) {
		f := newFixture()
		f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(soldOutListing(1), nil)
		err := f.uc.ReclaimItems(c, testOwner, []domain.ListingId{1}, testRecipient)
		req.ErrorIs(err, domain.ErrListingAlreadyFulfilled)
	})
}

func TestReclaimItemsReturnsItemToOwner(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	l := expiredListing(1)
	l.RecordPurchase(testBuyer, 10)
	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)
	f.listing.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.custody.On("Transfer", mock.Anything, l.Item, testEscrow, testRecipient).Return(nil)
	f.event.On("Create", mock.Anything, mock.Anything).Return(nil)

	req.NoError(f.uc.ReclaimItems(c, testOwner, []domain.ListingId{1}, testRecipient))
	req.True(l.ItemClaimed)
	f.custody.AssertExpectations(t)
}

func TestReclaimTokensRefundsProRataOnce(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	l := expiredListing(1)
	l.RecordPurchase(testBuyer, 20)
	l.RecordPurchase("0x00000000000000000000000000000000000eeee1", 5)
	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)
	f.listing.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.event.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.wallet.On("Transfer", mock.Anything, testCurrency, testEscrow, testRecipient, big.NewInt(2000)).
		Return(nil).Once()

	req.NoError(f.uc.ReclaimTokens(c, testBuyer, []domain.ListingId{1}, testRecipient))
	req.Equal(int64(20), l.TicketsReclaimed)
	req.Equal(int64(0), l.TicketsBoughtBy[testBuyer.ToLower()])
	// the other buyer's refund is untouched
	req.Equal(int64(5), l.TicketsBoughtBy["0x00000000000000000000000000000000000eeee1"])

	// the same buyer cannot reclaim twice
	err := f.uc.ReclaimTokens(c, testBuyer, []domain.ListingId{1}, testRecipient)
	req.ErrorIs(err, domain.ErrNothingToReclaim)
	f.wallet.AssertExpectations(t)
}

func TestDrainedListingIsRemoved(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	winner := domain.Address("0x00000000000000000000000000000000000eeee2")

	t.Run("second settlement leg deletes", func(t *testing.T) {
		f := newFixture()
		l := fulfilledListing(1, winner)
		l.TokensClaimed = true
		f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)
		f.listing.On("Update", mock.Anything, mock.Anything).Return(nil)
		f.listing.On("Delete", mock.Anything, domain.ListingId(1)).Return(nil)
		f.custody.On("Transfer", mock.Anything, l.Item, testEscrow, testRecipient).Return(nil)
		f.event.On("Create", mock.Anything, mock.Anything).Return(nil)

		req.NoError(f.uc.ClaimItems(c, winner, []domain.ListingId{1}, testRecipient))
		f.listing.AssertCalled(t, "Delete", mock.Anything, domain.ListingId(1))
	})

	t.Run("last reclaim after item reclaim deletes", func(t *testing.T) {
		f := newFixture()
		l := expiredListing(1)
		l.RecordPurchase(testBuyer, 10)
		l.ItemClaimed = true
		f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)
		f.listing.On("Update", mock.Anything, mock.Anything).Return(nil)
		f.listing.On("Delete", mock.Anything, domain.ListingId(1)).Return(nil)
		f.event.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.wallet.On("Transfer", mock.Anything, testCurrency, testEscrow, testRecipient, big.NewInt(1000)).
			Return(nil)

		req.NoError(f.uc.ReclaimTokens(c, testBuyer, []domain.ListingId{1}, testRecipient))
		f.listing.AssertCalled(t, "Delete", mock.Anything, domain.ListingId(1))
	})

	t.Run("partial settlement keeps the listing", func(t *testing.T) {
		f := newFixture()
		l := fulfilledListing(1, winner)
		f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)
		f.listing.On("Update", mock.Anything, mock.Anything).Return(nil)
		f.custody.On("Transfer", mock.Anything, l.Item, testEscrow, testRecipient).Return(nil)
		f.event.On("Create", mock.Anything, mock.Anything).Return(nil)

		req.NoError(f.uc.ClaimItems(c, winner, []domain.ListingId{1}, testRecipient))
		f.listing.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestReclaimTokensNothingBought(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(expiredListing(1), nil)

	err := f.uc.ReclaimTokens(c, testBuyer, []domain.ListingId{1}, testRecipient)
	req.ErrorIs(err, domain.ErrNothingToReclaim)
}
