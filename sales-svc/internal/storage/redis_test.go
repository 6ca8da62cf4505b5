package storage_test

import (
	"context"
	"testing"
	"time"

	"sahasra-foods/sales-svc/internal/domain"
	"sahasra-foods/sales-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*storage.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewStore(client), mr
}

func order(ref string, total string, items ...domain.OrderItem) domain.OrderEvent {
	return domain.OrderEvent{
		Type:       domain.EventOrderPlaced,
		OrderRef:   ref,
		Items:      items,
		GrandTotal: decimal.RequireFromString(total),
	}
}

func TestStore_RecordOrderBuildsBoards(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()
	ladoo := domain.OrderItem{Name: "Ladoo", Price: decimal.NewFromInt(200), Quantity: 3}
	barfi := domain.OrderItem{Name: "Barfi", Price: decimal.NewFromInt(100), Quantity: 2}

	recorded, err := store.RecordOrder(ctx, "2025-03-09", order("SAH-250309-001", "850", ladoo, barfi))
	require.NoError(t, err)
	assert.True(t, recorded)
	_, err = store.RecordOrder(ctx, "2025-03-09", order("SAH-250309-002", "450.50", barfi))
	require.NoError(t, err)
	_, err = store.RecordOrder(ctx, "2025-03-10", order("SAH-250310-001", "250", barfi))
	require.NoError(t, err)

	today, err := store.TopItems(ctx, storage.DailyKey("2025-03-09"), 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.ItemSales{{Name: "Barfi", Quantity: 4}, {Name: "Ladoo", Quantity: 3}}, today)

	allTime, err := store.TopItems(ctx, storage.AllTimeKey, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.ItemSales{{Name: "Barfi", Quantity: 6}}, allTime)

	revenue, err := store.Revenue(ctx, "2025-03-09")
	require.NoError(t, err)
	require.NotNil(t, revenue)
	assert.Equal(t, int64(2), revenue.Orders)
	assert.True(t, revenue.Revenue.Equal(decimal.RequireFromString("1300.50")))
	assert.Equal(t, 7*24*time.Hour, mr.TTL(storage.DailyKey("2025-03-09")))
}

func TestStore_RecordOrderIsIdempotent(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()
	event := order("SAH-250309-001", "250", domain.OrderItem{Name: "Barfi", Quantity: 2})

	first, err := store.RecordOrder(ctx, "2025-03-09", event)
	require.NoError(t, err)
	second, err := store.RecordOrder(ctx, "2025-03-09", event)
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
	items, err := store.TopItems(ctx, storage.AllTimeKey, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), items[0].Quantity)
}

func TestStore_RevenueMissing(t *testing.T) {
	store, _ := setupStore(t)

	revenue, err := store.Revenue(context.Background(), "2025-01-01")

	assert.NoError(t, err)
	assert.Nil(t, revenue)
}
