package storage

import (
	"context"
	"database/sql"

	"sahasra-foods/sales-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// PostgresRepository reads the order sheet written by order-svc. Test orders
// are excluded from every figure.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// TopItems ranks items by units sold. An empty date covers all time.
func (r *PostgresRepository) TopItems(ctx context.Context, date string, limit int) ([]domain.ItemSales, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT i.name, SUM(i.quantity) AS sold
		FROM order_sheet_items i
		JOIN order_sheet o ON o.order_ref = i.order_ref
		WHERE o.status <> 'Test' AND ($1 = '' OR o.order_date = $1)
		GROUP BY i.name
		ORDER BY sold DESC, i.name
		LIMIT $2
	`, date, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.ItemSales{}
	for rows.Next() {
		var item domain.ItemSales
		if err := rows.Scan(&item.Name, &item.Quantity); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) Revenue(ctx context.Context, date string) (*domain.DailyRevenue, error) {
	revenue := domain.DailyRevenue{Date: date}
	var total decimal.NullDecimal
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), SUM(grand_total)
		FROM order_sheet
		WHERE order_date = $1 AND status <> 'Test'
	`, date).Scan(&revenue.Orders, &total)
	if err != nil {
		return nil, err
	}
	revenue.Revenue = decimal.Zero
	if total.Valid {
		revenue.Revenue = total.Decimal
	}
	return &revenue, nil
}
