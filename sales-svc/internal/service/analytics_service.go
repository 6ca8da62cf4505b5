package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sahasra-foods/sales-svc/internal/domain"
	"sahasra-foods/sales-svc/internal/storage"
)

const (
	DefaultTopLimit = 10
	maxTopLimit     = 100
)

var ErrInvalidPeriod = errors.New("period must be today or all")

// AnalyticsService answers from the Redis boards and falls back to the order
// sheet when they are empty or unreachable.
type AnalyticsService struct {
	cache    SalesCache
	repo     SalesRepository
	location *time.Location
	now      func() time.Time
}

func NewAnalyticsService(cache SalesCache, repo SalesRepository, loc *time.Location) *AnalyticsService {
	if loc == nil {
		loc = time.UTC
	}
	return &AnalyticsService{cache: cache, repo: repo, location: loc, now: time.Now}
}

// WithClock replaces the clock used to resolve "today".
func (s *AnalyticsService) WithClock(now func() time.Time) *AnalyticsService {
	s.now = now
	return s
}

func (s *AnalyticsService) Today() string {
	return s.now().In(s.location).Format("2006-01-02")
}

func (s *AnalyticsService) TopItems(ctx context.Context, period string, limit int) ([]domain.ItemSales, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	if limit > maxTopLimit {
		limit = maxTopLimit
	}

	var key, date string
	switch period {
	case domain.PeriodToday, "":
		date = s.Today()
		key = storage.DailyKey(date)
	case domain.PeriodAll:
		key = storage.AllTimeKey
	default:
		return nil, ErrInvalidPeriod
	}

	items, err := s.cache.TopItems(ctx, key, limit)
	if err == nil && len(items) > 0 {
		return items, nil
	}
	if err != nil {
		slog.WarnContext(ctx, "sales cache unavailable, reading order sheet", "key", key, "error", err)
	}
	return s.repo.TopItems(ctx, date, limit)
}

func (s *AnalyticsService) Revenue(ctx context.Context, date string) (*domain.DailyRevenue, error) {
	if date == "" {
		date = s.Today()
	}
	revenue, err := s.cache.Revenue(ctx, date)
	if err == nil && revenue != nil {
		return revenue, nil
	}
	if err != nil {
		slog.WarnContext(ctx, "revenue cache unavailable, reading order sheet", "date", date, "error", err)
	}
	return s.repo.Revenue(ctx, date)
}
