package domain

import (
	"github.com/rafflehouse/goapi/base/ctx"
)

// Custody is the item-custody collaborator: it tracks which party holds each
// non-fungible item and performs escrow transfers on behalf of listings.
type Custody interface {
	// Transfer moves the item between parties. Fails with ErrItemNotEscrowed
	// when from is not the current holder.
	Transfer(c ctx.Ctx, item Item, from, to Address) error

	HolderOf(c ctx.Ctx, item Item) (Address, error)

	// Mint creates a new item in collection owned by to and returns its id.
	Mint(c ctx.Ctx, collection Address, to Address) (TokenId, error)

	// DeployCollection registers a fresh collection owned by owner.
	DeployCollection(c ctx.Ctx, name, symbol string, owner Address) (Address, error)
}
