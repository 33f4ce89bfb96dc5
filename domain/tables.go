package domain

// Table is a mongo collection name
type Table string

const (
	TableListings        Table = "listings"
	TablePendingRequests Table = "pending_randomness_requests"
	TableRaffleEvents    Table = "raffle_events"
	TableSettings        Table = "settings"
	TableCounters        Table = "counters"
	TableBalances        Table = "balances"
	TableItems           Table = "items"
	TableCollections     Table = "collections"
	TableRoyalties       Table = "royalties"
)
