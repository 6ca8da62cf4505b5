package service

import (
	"context"

	"sahasra-foods/sales-svc/internal/domain"
	"sahasra-foods/sales-svc/internal/storage"
)

type StoreInterface interface {
	RecordOrder(ctx context.Context, date string, event domain.OrderEvent) (bool, error)
}

type SalesCache interface {
	TopItems(ctx context.Context, key string, limit int) ([]domain.ItemSales, error)
	Revenue(ctx context.Context, date string) (*domain.DailyRevenue, error)
}

type SalesRepository interface {
	TopItems(ctx context.Context, date string, limit int) ([]domain.ItemSales, error)
	Revenue(ctx context.Context, date string) (*domain.DailyRevenue, error)
}

type AnalyticsInterface interface {
	TopItems(ctx context.Context, period string, limit int) ([]domain.ItemSales, error)
	Revenue(ctx context.Context, date string) (*domain.DailyRevenue, error)
}

var (
	_ StoreInterface     = (*storage.Store)(nil)
	_ SalesCache         = (*storage.Store)(nil)
	_ SalesRepository    = (*storage.PostgresRepository)(nil)
	_ AnalyticsInterface = (*AnalyticsService)(nil)
)
