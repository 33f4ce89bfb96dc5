package listing

import (
	"sort"

	"github.com/rafflehouse/goapi/domain"
)

// TicketRange marks the first ticket index of one purchase. The range runs
// until the next entry's start (or the end of the sold range).
type TicketRange struct {
	Start int64          `bson:"start" json:"start"`
	Buyer domain.Address `bson:"buyer" json:"buyer"`
}

// TicketLedger maps ticket indices to buyers with one entry per purchase
// instead of one per ticket. Entries are appended in strictly increasing
// start order, so the slice is sorted by construction and point lookups are
// a binary search.
type TicketLedger []TicketRange

// Append records a purchase starting at start. Callers append purchases in
// order; a start at or before the previous entry's start is a programming
// error.
func (l TicketLedger) Append(start int64, buyer domain.Address) TicketLedger {
	if n := len(l); n > 0 && l[n-1].Start >= start {
		panic("ticket ledger: non-monotonic append")
	}
	return append(l, TicketRange{Start: start, Buyer: buyer})
}

// BuyerOf returns the buyer holding ticket index i. The caller guarantees
// i is inside the sold range; Listing.BuyerOfTicket performs that check.
func (l TicketLedger) BuyerOf(i int64) domain.Address {
	if len(l) == 0 {
		return ""
	}
	// first entry with Start > i, the owning range is the one before it
	pos := sort.Search(len(l), func(j int) bool {
		return l[j].Start > i
	})
	if pos == 0 {
		return l[0].Buyer
	}
	return l[pos-1].Buyer
}
