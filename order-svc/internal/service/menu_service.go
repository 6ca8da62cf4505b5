package service

import (
	"context"
	"strings"

	"sahasra-foods/order-svc/internal/domain"
)

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(ctx)
}

func (s *MenuService) Get(ctx context.Context, name string) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(ctx, strings.TrimSpace(name))
}

func (s *MenuService) Upsert(ctx context.Context, item *domain.MenuItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" || item.Price.IsNegative() {
		return ErrInvalidMenuItem
	}
	return s.repo.UpsertMenuItem(ctx, item)
}
