package settings

import (
	"math/big"
	"time"

	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/domain"
)

// Key of the single global settings document.
const Key = "global"

// Settings are the admin-tunable marketplace parameters. They are read at
// listing creation time and snapshotted into the listing; updates bump
// Version and never touch already-created listings.
type Settings struct {
	Key     string `bson:"key" json:"-"`
	Version int64  `bson:"version" json:"version"`

	// MinDuration and MaxDuration bound listing durations, in seconds.
	MinDuration int64 `bson:"minDuration" json:"minDuration"`
	MaxDuration int64 `bson:"maxDuration" json:"maxDuration"`

	// MaxTicketsPerAddressRate limits how many of a listing's tickets one
	// address may buy, parts-per-1e18 of maxTickets. At most 1e18 (100%).
	MaxTicketsPerAddressRate string `bson:"maxTicketsPerAddressRate" json:"maxTicketsPerAddressRate"`

	// FeeRate is the platform fee, parts-per-1e18 of gross sale value.
	FeeRate string `bson:"feeRate" json:"feeRate"`

	// MintFee is the flat fee charged per mint-and-list call.
	MintFee string `bson:"mintFee" json:"mintFee"`

	FeeCollector domain.Address `bson:"feeCollector" json:"feeCollector"`

	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// FeeRateCeiling is the hard cap admin fee changes can never exceed: 40%.
var FeeRateCeiling = new(big.Int).Div(new(big.Int).Mul(big.NewInt(40), domain.RateBase), big.NewInt(100))

func (s *Settings) FeeRateBig() *big.Int {
	v, err := domain.ParseRate(s.FeeRate)
	if err != nil {
		panic("settings: malformed stored fee rate")
	}
	return v
}

func (s *Settings) MaxTicketsPerAddressRateBig() *big.Int {
	v, err := domain.ParseRate(s.MaxTicketsPerAddressRate)
	if err != nil {
		panic("settings: malformed stored ticket cap rate")
	}
	return v
}

func (s *Settings) MintFeeBig() *big.Int {
	v, err := domain.ParseAmount(s.MintFee)
	if err != nil {
		panic("settings: malformed stored mint fee")
	}
	return v
}

// Reader is the read-only view other usecases depend on. Both Repo and
// UseCase satisfy it; consumers wanting cached reads with defaults take the
// UseCase.
type Reader interface {
	Get(ctx.Ctx) (*Settings, error)
}

type Repo interface {
	Get(ctx.Ctx) (*Settings, error)
	Upsert(ctx.Ctx, *Settings) error
}

type UseCase interface {
	Get(ctx.Ctx) (*Settings, error)

	SetMinDuration(c ctx.Ctx, seconds int64) error
	SetMaxDuration(c ctx.Ctx, seconds int64) error
	// SetMaxTicketsPerAddressRate fails with ErrCapTooHigh above 1e18.
	SetMaxTicketsPerAddressRate(c ctx.Ctx, rate *big.Int) error
	// SetFeeRate fails with ErrFeeTooHigh above FeeRateCeiling.
	SetFeeRate(c ctx.Ctx, rate *big.Int) error
	SetMintFee(c ctx.Ctx, fee *big.Int) error
	SetFeeCollector(c ctx.Ctx, collector domain.Address) error
}
