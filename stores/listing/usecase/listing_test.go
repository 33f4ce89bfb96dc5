package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/domain"
	dmocks "github.com/rafflehouse/goapi/domain/mocks"
	"github.com/rafflehouse/goapi/domain/event"
	"github.com/rafflehouse/goapi/domain/listing"
	lmocks "github.com/rafflehouse/goapi/domain/listing/mocks"
	"github.com/rafflehouse/goapi/domain/settings"
	smocks "github.com/rafflehouse/goapi/domain/settings/mocks"
	emocks "github.com/rafflehouse/goapi/domain/event/mocks"
	qmocks "github.com/rafflehouse/goapi/service/query/mocks"
	susecase "github.com/rafflehouse/goapi/stores/settings/usecase"
)

const (
	testCurrency = domain.Address("0x00000000000000000000000000000000c0ffee01")
	testEscrow   = domain.Address("0x00000000000000000000000000000000e5c20001")
	testOwner    = domain.Address("0x00000000000000000000000000000000000aaaa1")
	testBuyer    = domain.Address("0x00000000000000000000000000000000000bbbb1")
)

type fixture struct {
	listing        *lmocks.Repo
	pendingRequest *lmocks.PendingRequestRepo
	settings       *smocks.Repo
	event          *emocks.Repo
	wallet         *dmocks.Wallet
	custody        *dmocks.Custody
	royalty        *dmocks.RoyaltyRegistry
	swapper        *dmocks.Swapper
	oracle         *dmocks.RandomnessOracle
	q              *qmocks.Mongo
	uc             listing.UseCase
}

func testSettings() *settings.Settings {
	return &settings.Settings{
		Key:                      settings.Key,
		MinDuration:              3600,
		MaxDuration:              2592000,
		MaxTicketsPerAddressRate: "200000000000000000", // 20%
		FeeRate:                  "60000000000000000",  // 6%
		MintFee:                  "5",
		FeeCollector:             "0x00000000000000000000000000000000000fee01",
	}
}

func newFixture() *fixture {
	f := &fixture{
		listing:        &lmocks.Repo{},
		pendingRequest: &lmocks.PendingRequestRepo{},
		settings:       &smocks.Repo{},
		event:          &emocks.Repo{},
		wallet:         &dmocks.Wallet{},
		custody:        &dmocks.Custody{},
		royalty:        &dmocks.RoyaltyRegistry{},
		swapper:        &dmocks.Swapper{},
		oracle:         &dmocks.RandomnessOracle{},
		q:              &qmocks.Mongo{},
	}
	f.uc = NewListing(&ListingUseCaseCfg{
		Listing:        f.listing,
		PendingRequest: f.pendingRequest,
		Settings:       f.settings,
		Event:          f.event,
		Wallet:         f.wallet,
		Custody:        f.custody,
		Royalty:        f.royalty,
		Swapper:        f.swapper,
		Oracle:         f.oracle,
		Q:              f.q,
		Currency:       testCurrency,
		Escrow:         testEscrow,
	})

	// run transaction bodies inline
	f.q.On("RunWithTransaction", mock.Anything, mock.Anything).
		Return(func(c bCtx.Ctx, run func(bCtx.Ctx) error) error { return run(c) })
	f.settings.On("Get", mock.Anything).Return(testSettings(), nil)

	return f
}

func openListing(id domain.ListingId, maxTickets int64, price string) *listing.Listing {
	return &listing.Listing{
		Id:           id,
		Item:         domain.Item{Collection: "0x00000000000000000000000000000000000ccc01", TokenId: "1"},
		Owner:        testOwner,
		MaxTickets:   maxTickets,
		TicketPrice:  price,
		FeeRate:      "60000000000000000",
		RoyaltyRate:  "0",
		CreationTime: time.Now(),
		Duration:     86400,
	}
}

func TestListValidation(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	cases := []struct {
		name   string
		params listing.ListItemParams
		want   error
	}{
		{
			name:   "too few tickets",
			params: listing.ListItemParams{MaxTickets: 1, TicketPrice: "100", Duration: 86400},
			want:   domain.ErrInvalidTicketCount,
		},
		{
			name:   "zero price",
			params: listing.ListItemParams{MaxTickets: 10, TicketPrice: "0", Duration: 86400},
			want:   domain.ErrInvalidPrice,
		},
		{
			name:   "malformed price",
			params: listing.ListItemParams{MaxTickets: 10, TicketPrice: "1.5", Duration: 86400},
			want:   domain.ErrInvalidPrice,
		},
		{
			name:   "duration too short",
			params: listing.ListItemParams{MaxTickets: 10, TicketPrice: "100", Duration: 60},
			want:   domain.ErrDurationTooShort,
		},
		{
			name:   "duration too long",
			params: listing.ListItemParams{MaxTickets: 10, TicketPrice: "100", Duration: 9999999999},
			want:   domain.ErrDurationTooLong,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.uc.List(c, testOwner, []listing.ListItemParams{tt.params})
			req.ErrorIs(err, tt.want)
			f.listing.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestListSnapshotsFeesAndEscrowsItem(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	item := domain.Item{Collection: "0x00000000000000000000000000000000000ccc01", TokenId: "7"}
	royaltyReceiver := domain.Address("0x00000000000000000000000000000000000ddd01")

	f.custody.On("Transfer", mock.Anything, item, testOwner, testEscrow).Return(nil)
	f.royalty.On("RateOf", mock.Anything, item.Collection).
		Return(royaltyReceiver, domain.RateBase, nil) // nonsense 100% rate, snapshotted verbatim
	f.listing.On("NextId", mock.Anything).Return(domain.ListingId(7), nil)

	var created *listing.Listing
	f.listing.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(*listing.Listing) }).
		Return(nil)
	f.event.On("Create", mock.Anything, mock.Anything).Return(nil)

	ids, err := f.uc.List(c, testOwner, []listing.ListItemParams{
		{Item: item, MaxTickets: 100, TicketPrice: "100", Duration: 86400},
	})
	req.NoError(err)
	req.Equal([]domain.ListingId{7}, ids)

	req.NotNil(created)
	req.Equal("60000000000000000", created.FeeRate)
	req.Equal(domain.RateBase.String(), created.RoyaltyRate)
	req.Equal(royaltyReceiver, created.RoyaltyReceiver)
	req.Equal(int64(0), created.TicketsBought)
	f.custody.AssertExpectations(t)
}

func TestMintAndListDeploysCollectionAndChargesMintFeeOnce(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	cfg := testSettings()
	deployed := domain.Address("0x00000000000000000000000000000000deadbeef")

	f.custody.On("DeployCollection", mock.Anything, "Raffle Drops", "DROP", testOwner).
		Return(deployed, nil)
	f.wallet.On("Transfer", mock.Anything, testCurrency, testOwner, cfg.FeeCollector, mock.Anything).
		Return(nil).Once()
	f.custody.On("Mint", mock.Anything, deployed, testEscrow).
		Return(domain.TokenId("0"), nil).Once()
	f.custody.On("Mint", mock.Anything, deployed, testEscrow).
		Return(domain.TokenId("1"), nil).Once()
	f.royalty.On("RateOf", mock.Anything, deployed).
		Return(domain.EmptyAddress, domain.Big0, nil)
	f.listing.On("NextId", mock.Anything).Return(domain.ListingId(1), nil).Once()
	f.listing.On("NextId", mock.Anything).Return(domain.ListingId(2), nil).Once()
	f.listing.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.event.On("Create", mock.Anything, mock.Anything).Return(nil)

	ids, err := f.uc.MintAndList(c, testOwner, listing.MintAndListParams{
		CollectionName:   "Raffle Drops",
		CollectionSymbol: "DROP",
		Items: []listing.MintItemParams{
			{MaxTickets: 10, TicketPrice: "100", Duration: 86400},
			{MaxTickets: 10, TicketPrice: "100", Duration: 86400},
		},
	})
	req.NoError(err)
	req.Equal([]domain.ListingId{1, 2}, ids)

	// the flat mint fee is charged once for the whole batch
	f.wallet.AssertNumberOfCalls(t, "Transfer", 1)
	f.custody.AssertNumberOfCalls(t, "Mint", 2)
}

func TestListFallsBackToDefaultSettingsOnFreshDatabase(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	// wired through the settings usecase, an empty database serves the
	// built-in defaults instead of failing every read
	emptyRepo := &smocks.Repo{}
	emptyRepo.On("Get", mock.Anything).Return(nil, domain.ErrNotFound)
	f.uc = NewListing(&ListingUseCaseCfg{
		Listing:        f.listing,
		PendingRequest: f.pendingRequest,
		Settings: susecase.NewSettings(&susecase.SettingsUseCaseCfg{
			Settings: emptyRepo,
			Event:    f.event,
		}),
		Event:    f.event,
		Wallet:   f.wallet,
		Custody:  f.custody,
		Royalty:  f.royalty,
		Swapper:  f.swapper,
		Oracle:   f.oracle,
		Q:        f.q,
		Currency: testCurrency,
		Escrow:   testEscrow,
	})

	item := domain.Item{Collection: "0x00000000000000000000000000000000000ccc01", TokenId: "9"}
	f.custody.On("Transfer", mock.Anything, item, testOwner, testEscrow).Return(nil)
	f.royalty.On("RateOf", mock.Anything, item.Collection).
		Return(domain.EmptyAddress, domain.Big0, nil)
	f.listing.On("NextId", mock.Anything).Return(domain.ListingId(9), nil)
	f.listing.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.event.On("Create", mock.Anything, mock.Anything).Return(nil)

	ids, err := f.uc.List(c, testOwner, []listing.ListItemParams{
		{Item: item, MaxTickets: 10, TicketPrice: "100", Duration: 86400},
	})
	req.NoError(err)
	req.Equal([]domain.ListingId{9}, ids)
}

func TestGetPassesThrough(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newFixture()

	l := openListing(3, 10, "100")
	f.listing.On("FindOne", mock.Anything, domain.ListingId(3)).Return(l, nil)
	f.listing.On("FindOne", mock.Anything, domain.ListingId(4)).Return(nil, domain.ErrListingNotExists)

	got, err := f.uc.Get(c, 3)
	req.NoError(err)
	req.Equal(l, got)

	_, err = f.uc.Get(c, 4)
	req.ErrorIs(err, domain.ErrListingNotExists)
}

func TestEventTypesAreStable(t *testing.T) {
	// external indexers key off these strings
	require.Equal(t, event.Type("list_item"), event.TypeListItem)
	require.Equal(t, event.Type("buy_ticket"), event.TypeBuyTicket)
	require.Equal(t, event.Type("fulfill_listing"), event.TypeFulfillListing)
}
