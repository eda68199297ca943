package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/analytics-service/internal/config"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestJSONRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := NewRedis(config.RedisConfig{Addr: mr.Addr()}, zap.NewNop())
	defer cache.Close()

	ctx := context.Background()
	require.NoError(t, cache.SetJSON(ctx, "k", payload{Name: "orders", Count: 3}, time.Minute))

	var got payload
	found, err := cache.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, payload{Name: "orders", Count: 3}, got)
}

func TestGetJSONMiss(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := NewRedis(config.RedisConfig{Addr: mr.Addr()}, zap.NewNop())
	defer cache.Close()

	var got payload
	found, err := cache.GetJSON(context.Background(), "missing", &got)
	require.NoError(t, err)
	require.False(t, found)
}

func TestSetJSONHonorsTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := NewRedis(config.RedisConfig{Addr: mr.Addr()}, zap.NewNop())
	defer cache.Close()

	ctx := context.Background()
	require.NoError(t, cache.SetJSON(ctx, "k", payload{Name: "x"}, time.Second))

	mr.FastForward(2 * time.Second)

	var got payload
	found, err := cache.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	require.False(t, found)
}
