// Package redis holds the catalog's Redis client, its keyspace and the
// read helpers shared by the Redis repositories.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
)

// Options tunes the connection pool. Zero values use go-redis defaults.
type Options struct {
	PoolSize    int
	DialTimeout time.Duration
	MaxRetries  int
}

// NewClient creates a client for a single Redis instance. go-redis dials
// lazily, so an unreachable server only shows up on first use or Ping.
func NewClient(addr string, opts *Options) (Client, error) {
	if addr == "" {
		return nil, errors.InvalidArgument("redis address is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	return redis.NewClient(&redis.Options{
		Addr:        addr,
		PoolSize:    opts.PoolSize,
		DialTimeout: opts.DialTimeout,
		MaxRetries:  opts.MaxRetries,
	}), nil
}

// Ping reports an unreachable server as CodeUnavailable
func Ping(ctx context.Context, client Client) error {
	if client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
	}
	return nil
}
