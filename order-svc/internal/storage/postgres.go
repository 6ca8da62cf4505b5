package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"sahasra-foods/order-svc/internal/domain"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// sheetColumns pairs each order_sheet column with its display header.
var sheetColumns = []string{
	"order_date",
	"order_ref",
	"customer_name",
	"phone_number",
	"email",
	"address",
	"items_ordered",
	"item_count",
	"cart_total",
	"delivery_charges",
	"grand_total",
	"special_instructions",
	"status",
	"order_time",
}

// SchemaStatements creates the order sheet, its item lines, the error log
// and the menu catalogue, then labels the sheet columns with their headers.
var SchemaStatements = append([]string{
	`CREATE TABLE IF NOT EXISTS order_sheet (
		id SERIAL PRIMARY KEY,
		order_date TEXT NOT NULL,
		order_ref TEXT NOT NULL UNIQUE,
		client_ref TEXT NOT NULL DEFAULT '',
		customer_name TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL,
		items_ordered TEXT NOT NULL,
		item_count INTEGER NOT NULL,
		cart_total NUMERIC(12, 2) NOT NULL,
		delivery_charges NUMERIC(12, 2) NOT NULL,
		grand_total NUMERIC(12, 2) NOT NULL,
		special_instructions TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		order_time TEXT NOT NULL,
		received_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_sheet_items (
		order_ref TEXT NOT NULL REFERENCES order_sheet (order_ref),
		line INTEGER NOT NULL,
		name TEXT NOT NULL,
		price NUMERIC(12, 2) NOT NULL,
		quantity INTEGER NOT NULL,
		received_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (order_ref, line)
	)`,
	`CREATE TABLE IF NOT EXISTS order_error_log (
		id SERIAL PRIMARY KEY,
		logged_at TIMESTAMPTZ NOT NULL,
		error_type TEXT NOT NULL,
		error_message TEXT NOT NULL,
		order_data TEXT NOT NULL,
		recipient TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		price NUMERIC(12, 2) NOT NULL,
		image_url TEXT NOT NULL DEFAULT '',
		available BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}, headerComments()...)

func headerComments() []string {
	stmts := make([]string, 0, len(sheetColumns))
	for i, column := range sheetColumns {
		stmts = append(stmts, fmt.Sprintf("COMMENT ON COLUMN order_sheet.%s IS '%s'", column, domain.SheetHeaders[i]))
	}
	return stmts
}

type PostgresRepository struct {
	DB *sql.DB

	mu          sync.Mutex
	schemaReady bool
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// EnsureSchema runs SchemaStatements once per process. A failed attempt is
// retried on the next call.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.schemaReady {
		return nil
	}
	for _, stmt := range SchemaStatements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	r.schemaReady = true
	return nil
}

func (r *PostgresRepository) AppendOrder(ctx context.Context, record *domain.OrderRecord) error {
	if err := r.EnsureSchema(ctx); err != nil {
		return err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO order_sheet (
			order_date, order_ref, client_ref, customer_name, phone_number, email, address,
			items_ordered, item_count, cart_total, delivery_charges, grand_total,
			special_instructions, status, order_time, received_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`,
		record.OrderDate, record.OrderRef, record.ClientRef, record.CustomerName, record.CustomerPhone,
		record.CustomerEmail, record.CustomerAddress, record.ItemsOrdered, record.ItemCount,
		record.CartTotal, record.DeliveryCharges, record.GrandTotal,
		record.SpecialInstructions, record.Status, record.OrderTime, record.ReceivedAt,
	); err != nil {
		if isOrderRefConflict(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateOrderRef, record.OrderRef)
		}
		return err
	}

	for line, item := range record.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_sheet_items (order_ref, line, name, price, quantity, received_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, record.OrderRef, line+1, item.Name, item.Price, item.Quantity, record.ReceivedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) AppendErrorLog(ctx context.Context, entry domain.ErrorLogEntry) error {
	if err := r.EnsureSchema(ctx); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO order_error_log (logged_at, error_type, error_message, order_data, recipient)
		VALUES ($1, $2, $3, $4, $5)
	`, entry.Timestamp, entry.ErrorType, entry.Message, entry.OrderData, entry.Recipient)
	return err
}

const selectRecord = `
	SELECT order_date, order_ref, client_ref, customer_name, phone_number, email, address,
		items_ordered, item_count, cart_total, delivery_charges, grand_total,
		special_instructions, status, order_time, received_at
	FROM order_sheet`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (domain.OrderRecord, error) {
	var rec domain.OrderRecord
	err := row.Scan(&rec.OrderDate, &rec.OrderRef, &rec.ClientRef, &rec.CustomerName, &rec.CustomerPhone,
		&rec.CustomerEmail, &rec.CustomerAddress, &rec.ItemsOrdered, &rec.ItemCount,
		&rec.CartTotal, &rec.DeliveryCharges, &rec.GrandTotal,
		&rec.SpecialInstructions, &rec.Status, &rec.OrderTime, &rec.ReceivedAt)
	return rec, err
}

func (r *PostgresRepository) ListOrders(ctx context.Context, limit int) ([]domain.OrderRecord, error) {
	if err := r.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	rows, err := r.DB.QueryContext(ctx, selectRecord+" ORDER BY received_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.OrderRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderRef string) (*domain.OrderRecord, error) {
	if err := r.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	rec, err := scanRecord(r.DB.QueryRowContext(ctx, selectRecord+" WHERE order_ref = $1", orderRef))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT name, price, quantity
		FROM order_sheet_items
		WHERE order_ref = $1
		ORDER BY line
	`, orderRef)
	if err != nil {
		return &rec, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.Name, &item.Price, &item.Quantity); err != nil {
			continue
		}
		rec.Items = append(rec.Items, item)
	}
	return &rec, rows.Err()
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	if err := r.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, description, price, image_url, available, created_at
		FROM menu_items
		WHERE available
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.ImageURL, &item.Available, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, name string) (*domain.MenuItem, error) {
	if err := r.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	var item domain.MenuItem
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, description, price, image_url, available, created_at
		FROM menu_items
		WHERE name = $1 AND available`, name).
		Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.ImageURL, &item.Available, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) UpsertMenuItem(ctx context.Context, item *domain.MenuItem) error {
	if err := r.EnsureSchema(ctx); err != nil {
		return err
	}
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_items (name, description, price, image_url, available)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO UPDATE
		SET description = EXCLUDED.description, price = EXCLUDED.price,
			image_url = EXCLUDED.image_url, available = EXCLUDED.available
		RETURNING id, created_at
	`, item.Name, item.Description, item.Price, item.ImageURL, item.Available).
		Scan(&item.ID, &item.CreatedAt)
}

func isOrderRefConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return false
	}
	return pqErr.Constraint == "" || pqErr.Constraint == "order_sheet_order_ref_key"
}
