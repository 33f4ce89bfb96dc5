package redisclient

import (
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/rafflehouse/goapi/base/log"
)

const (
	dialTimeout  = 3 * time.Second
	readTimeout  = 3 * time.Second
	writeTimeout = 3 * time.Second
	idleTimeout  = 240 * time.Second
	maxIdle      = 64
)

// Client wraps a redigo connection pool
type Client struct {
	Name string
	Pool *redis.Pool
}

// MustConnectRedis returns a pooled redis client or panics
func MustConnectRedis(name, uri, password string, maxActive int) *Client {
	pool := &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		IdleTimeout: idleTimeout,
		Wait:        true,
		Dial: func() (redis.Conn, error) {
			opts := []redis.DialOption{
				redis.DialConnectTimeout(dialTimeout),
				redis.DialReadTimeout(readTimeout),
				redis.DialWriteTimeout(writeTimeout),
			}
			if password != "" {
				opts = append(opts, redis.DialPassword(password))
			}
			return redis.Dial("tcp", uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	conn := pool.Get()
	defer conn.Close()
	if _, err := conn.Do("PING"); err != nil {
		log.Log().WithFields(log.Fields{"name": name, "uri": uri, "err": err}).Panic("fail to dial redis")
	}

	log.Log().WithFields(log.Fields{"name": name, "uri": uri}).Info("redis connected")
	return &Client{Name: name, Pool: pool}
}
