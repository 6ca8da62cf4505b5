package service_test

import (
	"context"
	"testing"

	"sahasra-foods/order-svc/internal/domain"
	"sahasra-foods/order-svc/internal/mocks"
	"sahasra-foods/order-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMenuService_Upsert(t *testing.T) {
	tests := []struct {
		name    string
		item    *domain.MenuItem
		wantErr error
	}{
		{
			name: "valid item",
			item: &domain.MenuItem{Name: "  Ladoo ", Price: decimal.NewFromInt(200), Available: true},
		},
		{
			name:    "blank name",
			item:    &domain.MenuItem{Name: " ", Price: decimal.NewFromInt(200)},
			wantErr: service.ErrInvalidMenuItem,
		},
		{
			name:    "negative price",
			item:    &domain.MenuItem{Name: "Barfi", Price: decimal.NewFromInt(-1)},
			wantErr: service.ErrInvalidMenuItem,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewMenuRepository(t)
			svc := service.NewMenuService(repo)
			ctx := context.Background()

			if testCase.wantErr == nil {
				repo.On("UpsertMenuItem", ctx, testCase.item).Return(nil).Once()
			}

			err := svc.Upsert(ctx, testCase.item)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "Ladoo", testCase.item.Name)
		})
	}
}

func TestMenuService_Get(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	svc := service.NewMenuService(repo)
	ctx := context.Background()

	repo.On("GetMenuItem", ctx, "Jalebi").Return(nil, domain.ErrNotFound).Once()

	item, err := svc.Get(ctx, " Jalebi ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, item)
}
