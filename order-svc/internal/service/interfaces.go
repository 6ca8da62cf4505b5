package service

import (
	"context"
	"time"

	"sahasra-foods/order-svc/internal/domain"
)

type OrderServiceInterface interface {
	Submit(ctx context.Context, raw []byte) (string, error)
	List(ctx context.Context, limit int) ([]domain.OrderRecord, error)
	Get(ctx context.Context, orderRef string) (*domain.OrderRecord, error)
}

type MenuServiceInterface interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	Get(ctx context.Context, name string) (*domain.MenuItem, error)
	Upsert(ctx context.Context, item *domain.MenuItem) error
}

// OrderSheet is the append-only order table plus its error log.
type OrderSheet interface {
	AppendOrder(ctx context.Context, record *domain.OrderRecord) error
	AppendErrorLog(ctx context.Context, entry domain.ErrorLogEntry) error
	ListOrders(ctx context.Context, limit int) ([]domain.OrderRecord, error)
	GetOrder(ctx context.Context, orderRef string) (*domain.OrderRecord, error)
}

type MenuRepository interface {
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, name string) (*domain.MenuItem, error)
	UpsertMenuItem(ctx context.Context, item *domain.MenuItem) error
}

type OrderRefIssuer interface {
	NextOrderRef(ctx context.Context, day time.Time) (string, error)
}

// SubmissionGuard remembers which order reference a submission ID produced
// so a retried request does not append a second row.
type SubmissionGuard interface {
	Lookup(ctx context.Context, submissionID string) (string, error)
	Remember(ctx context.Context, submissionID, orderRef string) error
}

type Notifier interface {
	NotifyOrder(ctx context.Context, record domain.OrderRecord) error
	Recipient() string
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

var (
	_ OrderServiceInterface = (*OrderService)(nil)
	_ MenuServiceInterface  = (*MenuService)(nil)
)
