package domain

import (
	"math/big"
	"strings"
)

var (
	Big0 = big.NewInt(0)
	Big1 = big.NewInt(1)

	// RateBase is the denominator of all fee and cap rates: parts-per-1e18.
	RateBase = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// ListingId identifies one raffle listing. Ids are assigned monotonically
// and never reused.
type ListingId int64

// Item is the non-fungible asset a listing raffles off.
type Item struct {
	Collection Address `bson:"collection" json:"collection"`
	TokenId    TokenId `bson:"tokenId" json:"tokenId"`
}

// ParseAmount parses a base-10 wei-scale amount and rejects negatives.
func ParseAmount(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, ErrInvalidNumberFormat
	}
	return v, nil
}

// ParseRate parses a parts-per-1e18 rate and rejects negatives.
func ParseRate(s string) (*big.Int, error) {
	return ParseAmount(s)
}
