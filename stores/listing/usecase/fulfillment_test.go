package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/domain"
	"github.com/rafflehouse/goapi/domain/listing"
)

func soldOutListing(id domain.ListingId) *listing.Listing {
	l := openListing(id, 100, "100")
	for _, buyer := range []domain.Address{
		"0x00000000000000000000000000000000000eeee1",
		"0x00000000000000000000000000000000000eeee2",
		"0x00000000000000000000000000000000000eeee3",
		"0x00000000000000000000000000000000000eeee4",
		"0x00000000000000000000000000000000000eeee5",
	} {
		l.RecordPurchase(buyer, 20)
	}
	l.RandomnessRequested = true
	return l
}

func TestFulfillRandomnessDerivesWinnerFromValue(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	requestId := domain.RandomnessRequestId("req-1")
	l := soldOutListing(1)
	f.pendingRequest.On("Consume", mock.Anything, requestId).Return(domain.ListingId(1), nil)
	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)

	var updated *listing.Listing
	f.listing.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { updated = args.Get(1).(*listing.Listing) }).
		Return(nil)
	f.event.On("Create", mock.Anything, mock.Anything).Return(nil)

	// 100045 mod 100 tickets lands on index 45, the third buyer's interval
	req.NoError(f.uc.FulfillRandomness(c, requestId, big.NewInt(100045)))

	req.NotNil(updated)
	req.NotNil(updated.Winner)
	req.Equal(domain.Address("0x00000000000000000000000000000000000eeee3"), *updated.Winner)
}

func TestFulfillRandomnessUnknownRequestIsNoop(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	f.pendingRequest.On("Consume", mock.Anything, mock.Anything).
		Return(domain.ListingId(0), domain.ErrNotFound)

	req.NoError(f.uc.FulfillRandomness(c, "bogus", big.NewInt(1)))
	f.listing.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
	f.listing.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestFulfillRandomnessWinnerIsWriteOnce(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	requestId := domain.RandomnessRequestId("req-1")
	l := soldOutListing(1)
	winner := domain.Address("0x00000000000000000000000000000000000eeee1")
	l.Winner = &winner

	f.pendingRequest.On("Consume", mock.Anything, requestId).Return(domain.ListingId(1), nil)
	f.listing.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)

	req.NoError(f.uc.FulfillRandomness(c, requestId, big.NewInt(99)))
	f.listing.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	req.Equal(winner, *l.Winner)
}
