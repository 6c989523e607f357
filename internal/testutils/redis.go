// Package testutils provides helpers shared by the package tests: in-memory
// Redis, temporary SQLite databases and catalog fixtures.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	client, mr := CreateTestMiniredis(t)
	return client, mr.Close
}

// CreateTestMiniredis returns the client together with the server so tests can
// inspect keys or inject failures with SetError.
func CreateTestMiniredis(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}
