package storage

import (
	"context"
	"errors"
	"strconv"
	"time"

	"sahasra-foods/sales-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	dailyTTL   = 7 * 24 * time.Hour
	revenueTTL = 90 * 24 * time.Hour
	seenTTL    = 7 * 24 * time.Hour

	AllTimeKey = "sales:alltime"
)

func DailyKey(date string) string {
	return "sales:daily:" + date
}

func RevenueKey(date string) string {
	return "sales:revenue:" + date
}

func seenKey(orderRef string) string {
	return "sales:seen:" + orderRef
}

// Store keeps the sales leaderboards and daily revenue in Redis.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// RecordOrder adds an order to the boards of date. It reports false when the
// order was already counted.
func (s *Store) RecordOrder(ctx context.Context, date string, event domain.OrderEvent) (bool, error) {
	fresh, err := s.rdb.SetNX(ctx, seenKey(event.OrderRef), date, seenTTL).Result()
	if err != nil {
		return false, err
	}
	if !fresh {
		return false, nil
	}

	dailyKey := DailyKey(date)
	revenueKey := RevenueKey(date)
	paise := event.GrandTotal.Shift(2).Round(0).IntPart()

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, item := range event.Items {
			pipe.ZIncrBy(ctx, dailyKey, float64(item.Quantity), item.Name)
			pipe.ZIncrBy(ctx, AllTimeKey, float64(item.Quantity), item.Name)
		}
		pipe.Expire(ctx, dailyKey, dailyTTL)
		pipe.HIncrBy(ctx, revenueKey, "orders", 1)
		pipe.HIncrBy(ctx, revenueKey, "paise", paise)
		pipe.Expire(ctx, revenueKey, revenueTTL)
		return nil
	})
	if err != nil {
		s.rdb.Del(ctx, seenKey(event.OrderRef))
		return false, err
	}
	return true, nil
}

func (s *Store) TopItems(ctx context.Context, key string, limit int) ([]domain.ItemSales, error) {
	result, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	items := make([]domain.ItemSales, 0, len(result))
	for _, member := range result {
		name, _ := member.Member.(string)
		items = append(items, domain.ItemSales{Name: name, Quantity: int64(member.Score)})
	}
	return items, nil
}

// Revenue returns the cached totals for date, or nil when nothing is cached.
func (s *Store) Revenue(ctx context.Context, date string) (*domain.DailyRevenue, error) {
	fields, err := s.rdb.HGetAll(ctx, RevenueKey(date)).Result()
	if errors.Is(err, redis.Nil) || (err == nil && len(fields) == 0) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	orders, _ := strconv.ParseInt(fields["orders"], 10, 64)
	paise, _ := strconv.ParseInt(fields["paise"], 10, 64)
	return &domain.DailyRevenue{
		Date:    date,
		Orders:  orders,
		Revenue: decimal.New(paise, -2),
	}, nil
}
