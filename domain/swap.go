package domain

import (
	"math/big"

	"github.com/rafflehouse/goapi/base/ctx"
)

// SwapDescription is the call contract of the token-swap adapter. Purchases
// in a foreign currency must name the marketplace's settlement currency and
// escrow account exactly; anything else is rejected before execution.
type SwapDescription struct {
	SrcCurrency Address `bson:"srcCurrency" json:"srcCurrency" validate:"required"`
	DstCurrency Address `bson:"dstCurrency" json:"dstCurrency" validate:"required"`
	DstReceiver Address `bson:"dstReceiver" json:"dstReceiver" validate:"required"`
	// Amount of SrcCurrency to swap, wei-scale decimal string.
	Amount string `bson:"amount" json:"amount" validate:"required"`
}

// Swapper executes a pre-verified swap and reports the amount of
// DstCurrency received by DstReceiver.
type Swapper interface {
	Swap(c ctx.Ctx, caller Address, desc SwapDescription, payload []byte) (*big.Int, error)
}
