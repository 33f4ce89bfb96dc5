package redis

import (
	"errors"
	"time"

	"github.com/rafflehouse/goapi/base/ctx"
)

// Forever means the key never expires
const Forever = time.Duration(-1)

var (
	ErrNotFound = errors.New("redis key not found")
)

// Service is the subset of redis commands the api uses.
type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(c ctx.Ctx, keys ...string) (int, error)
	Exists(c ctx.Ctx, key string) (bool, error)
	Incrby(c ctx.Ctx, key string, val int) (int64, error)
	// TTL returns remaining seconds, -1 when the key has no expire
	TTL(c ctx.Ctx, key string) (int, error)
}
