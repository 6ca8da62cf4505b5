package storage_test

import (
	"context"
	"testing"
	"time"

	"sahasra-foods/order-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisStore(t *testing.T) (*storage.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewRedisStore(client, "SAH", 0), mr
}

func TestRedisStore_NextOrderRefCountsPerDay(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()
	day := time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC)

	first, err := store.NextOrderRef(ctx, day)
	require.NoError(t, err)
	second, err := store.NextOrderRef(ctx, day)
	require.NoError(t, err)
	nextDay, err := store.NextOrderRef(ctx, day.Add(2*time.Minute))
	require.NoError(t, err)

	assert.Equal(t, "SAH-250309-001", first)
	assert.Equal(t, "SAH-250309-002", second)
	assert.Equal(t, "SAH-250310-001", nextDay)
	assert.Equal(t, 48*time.Hour, mr.TTL(store.SequenceKey(day)))
}

func TestRedisStore_NextOrderRefUnavailable(t *testing.T) {
	store, mr := setupRedisStore(t)
	mr.SetError("LOADING redis is loading the dataset")

	_, err := store.NextOrderRef(context.Background(), time.Now())
	assert.Error(t, err)
}

func TestRedisStore_SubmissionMarker(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	ref, err := store.Lookup(ctx, "sub-1")
	require.NoError(t, err)
	assert.Empty(t, ref)

	require.NoError(t, store.Remember(ctx, "sub-1", "SAH-250309-001"))

	ref, err = store.Lookup(ctx, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, "SAH-250309-001", ref)
	assert.Equal(t, storage.DefaultSubmissionTTL, mr.TTL("orders:submission:sub-1"))

	mr.FastForward(storage.DefaultSubmissionTTL + time.Second)
	ref, err = store.Lookup(ctx, "sub-1")
	require.NoError(t, err)
	assert.Empty(t, ref)
}
