package oracle

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/base/goroutine"
	"github.com/rafflehouse/goapi/base/log"
	"github.com/rafflehouse/goapi/domain"
)

// wordBits is the size of each delivered random value
const wordBits = 256

type impl struct {
	delay     time.Duration
	fulfiller domain.RandomnessFulfiller
}

// New returns a local randomness coordinator. Each request is answered
// asynchronously after delay through the subscribed fulfiller, mimicking the
// unbounded latency of an external oracle. Subscribe must be called before
// the first request.
func New(delay time.Duration) *Oracle {
	return &Oracle{&impl{delay: delay}}
}

// Oracle wraps impl to expose Subscribe next to the domain interface. The
// fulfiller cannot be a constructor argument since the listing usecase both
// consumes this service and receives its callbacks.
type Oracle struct {
	*impl
}

func (o *Oracle) Subscribe(f domain.RandomnessFulfiller) {
	o.impl.fulfiller = f
}

func (im *impl) RequestRandomness(c ctx.Ctx) (domain.RandomnessRequestId, error) {
	if im.fulfiller == nil {
		return "", domain.ErrNotFound
	}
	return domain.RandomnessRequestId(uuid.New().String()), nil
}

// Dispatch schedules the delivery for a previously issued request id. It is
// separate from RequestRandomness so callers can persist the id first; a
// delivery that lands before the request is recorded would be dropped as a
// replay.
func (im *impl) Dispatch(c ctx.Ctx, requestId domain.RandomnessRequestId) {
	delay := im.delay
	fulfiller := im.fulfiller
	goroutine.RecoverableGo(func() {
		time.Sleep(delay)
		callback := ctx.Background()

		max := new(big.Int).Lsh(domain.Big1, wordBits)
		value, err := rand.Int(rand.Reader, max)
		if err != nil {
			callback.WithFields(log.Fields{
				"err":       err,
				"requestId": requestId,
			}).Error("rand.Int failed")
			return
		}
		if err := fulfiller.FulfillRandomness(callback, requestId, value); err != nil {
			callback.WithFields(log.Fields{
				"err":       err,
				"requestId": requestId,
			}).Error("FulfillRandomness failed")
		}
	})
}
