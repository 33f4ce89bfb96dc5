package domain

import (
	"math/big"

	"github.com/rafflehouse/goapi/base/ctx"
)

type RandomnessRequestId string

// RandomnessOracle is the outbound half of the two-phase randomness
// protocol. RequestRandomness returns immediately with a request id;
// Dispatch triggers the asynchronous delivery for that id, which arrives
// later through a RandomnessFulfiller callback with unbounded latency.
// Callers must Dispatch only after the request id is durably recorded,
// otherwise the delivery can observe state from before the request.
// There is no cancellation of an outstanding request.
type RandomnessOracle interface {
	RequestRandomness(c ctx.Ctx) (RandomnessRequestId, error)
	Dispatch(c ctx.Ctx, requestId RandomnessRequestId)
}

// RandomnessFulfiller is the inbound half: the oracle (or its HTTP callback)
// delivers one integer per request id. Implementations must consume each
// request id at most once; a replayed or unknown id is a no-op.
type RandomnessFulfiller interface {
	FulfillRandomness(c ctx.Ctx, requestId RandomnessRequestId, value *big.Int) error
}
