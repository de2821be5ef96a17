package health

import (
	"context"
	"errors"
	"testing"

	"lifeflow-backend/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping() error { return f.err }

func setupRedis(t *testing.T) *redis.Client {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	return rdb
}

func TestCollect_AllConnected(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()
	rdb.Set(ctx, middleware.KeyReqTotal, 10, 0)
	rdb.Set(ctx, middleware.KeyReqErrors, 2, 0)
	rdb.Set(ctx, middleware.KeyResTime, 50.0, 0)
	rdb.Set(ctx, middleware.KeyResCount, 10, 0)

	result := Collect(ctx, rdb, fakePinger{})
	assert.Equal(t, "ok", result.Status)
	assert.Equal(t, "connected", result.Dependencies["database"].Status)
	assert.Equal(t, "connected", result.Dependencies["redis"].Status)
	assert.EqualValues(t, 10, result.Traffic.TotalRequests)
	assert.EqualValues(t, 2, result.Traffic.FailedCount)
	assert.Equal(t, "5.0", result.Traffic.AvgResponseMs)
}

func TestCollect_DBError(t *testing.T) {
	rdb := setupRedis(t)
	result := Collect(context.Background(), rdb, fakePinger{err: errors.New("down")})
	assert.Equal(t, "issue", result.Status)
	assert.Equal(t, "error", result.Dependencies["database"].Status)
}

func TestCollect_NoDB(t *testing.T) {
	rdb := setupRedis(t)
	result := Collect(context.Background(), rdb, nil)
	assert.Equal(t, "ok", result.Status)
	assert.Equal(t, "disconnected", result.Dependencies["database"].Status)
}
