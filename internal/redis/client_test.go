package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/redis"
)

func TestNewClientRequiresAddress(t *testing.T) {
	client, err := redis.NewClient("", nil)
	assert.Nil(t, client)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestPing(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := redis.NewClient(mr.Addr(), &redis.Options{PoolSize: 2, MaxRetries: -1})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	require.NoError(t, redis.Ping(ctx, client))

	mr.Close()
	err = redis.Ping(ctx, client)
	assert.Equal(t, errors.CodeUnavailable, errors.GetCode(err))
}

func TestPingNilClient(t *testing.T) {
	assert.True(t, errors.IsInvalidArgument(redis.Ping(context.Background(), nil)))
}
