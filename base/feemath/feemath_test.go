package feemath

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rafflehouse/goapi/domain"
)

func rate(percent int64) *big.Int {
	r := new(big.Int).Mul(big.NewInt(percent), domain.RateBase)
	return r.Quo(r, big.NewInt(100))
}

func TestPortionFloors(t *testing.T) {
	req := require.New(t)

	// 6% of 200 = 12
	req.Equal(int64(12), Portion(big.NewInt(200), rate(6)).Int64())
	// 6% of 33 = 1.98 -> 1
	req.Equal(int64(1), Portion(big.NewInt(33), rate(6)).Int64())
	req.Equal(int64(0), Portion(big.NewInt(0), rate(6)).Int64())
	req.Equal(int64(0), Portion(big.NewInt(100), big.NewInt(0)).Int64())
}

func TestSplitExact(t *testing.T) {
	req := require.New(t)

	// listing: 100 tickets at price 2, 6% fee, no royalty
	gross := big.NewInt(200)
	fee, royalty, net := Split(gross, rate(6), big.NewInt(0))
	req.Equal(int64(12), fee.Int64())
	req.Equal(int64(0), royalty.Int64())
	req.Equal(int64(188), net.Int64())

	sum := new(big.Int).Add(fee, royalty)
	sum.Add(sum, net)
	req.Zero(sum.Cmp(gross))
}

func TestSplitWithRoyalty(t *testing.T) {
	req := require.New(t)

	gross := big.NewInt(1000)
	fee, royalty, net := Split(gross, rate(6), rate(5))
	req.Equal(int64(60), fee.Int64())
	req.Equal(int64(50), royalty.Int64())
	req.Equal(int64(890), net.Int64())
}

func TestSplitCapsRoyalty(t *testing.T) {
	req := require.New(t)

	gross := big.NewInt(100)
	fee, royalty, net := Split(gross, rate(40), rate(90))
	req.Equal(int64(40), fee.Int64())
	req.Equal(int64(60), royalty.Int64())
	req.Equal(int64(0), net.Int64())
}

func TestSplitIsExactForOddAmounts(t *testing.T) {
	req := require.New(t)

	gross := big.NewInt(333)
	fee, royalty, net := Split(gross, rate(6), rate(3))
	sum := new(big.Int).Add(fee, royalty)
	sum.Add(sum, net)
	req.Zero(sum.Cmp(gross))
	req.Equal(int64(19), fee.Int64())
	req.Equal(int64(9), royalty.Int64())
}

func TestPerAddressCap(t *testing.T) {
	req := require.New(t)

	// 20% of 100 tickets
	req.Equal(int64(20), PerAddressCap(100, rate(20)))
	// floor(20% of 9) = 1
	req.Equal(int64(1), PerAddressCap(9, rate(20)))
	// floor(20% of 2) = 0, clamped up to 1
	req.Equal(int64(1), PerAddressCap(2, rate(20)))
	// 100% cap
	req.Equal(int64(50), PerAddressCap(50, domain.RateBase))
}
