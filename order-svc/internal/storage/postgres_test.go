package storage_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"sahasra-foods/order-svc/internal/domain"
	"sahasra-foods/order-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresRepository(db), mock
}

func expectSchema(mock sqlmock.Sqlmock) {
	for _, stmt := range storage.SchemaStatements {
		mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(sqlmock.NewResult(0, 0))
	}
}

func sampleRecord() *domain.OrderRecord {
	return &domain.OrderRecord{
		OrderDate:       "2025-03-09",
		OrderRef:        "SAH-250309-001",
		ClientRef:       "SAH-250309-004",
		CustomerName:    "Asha Rao",
		CustomerPhone:   "9876543210",
		CustomerAddress: "12 Temple Road",
		ItemsOrdered:    "Ladoo (Qty: 3, ₹200 each, Total: ₹600) | Kaju Katli (Qty: 1, ₹450 each, Total: ₹450)",
		ItemCount:       4,
		CartTotal:       decimal.NewFromInt(1050),
		DeliveryCharges: decimal.NewFromInt(50),
		GrandTotal:      decimal.NewFromInt(1100),
		Status:          domain.StatusPending,
		OrderTime:       "10:30:00",
		ReceivedAt:      time.Date(2025, 3, 9, 10, 30, 0, 0, time.UTC),
		Items: []domain.CartItem{
			{Name: "Ladoo", Price: decimal.NewFromInt(200), Quantity: 3},
			{Name: "Kaju Katli", Price: decimal.NewFromInt(450), Quantity: 1},
		},
	}
}

func TestSchemaStatementsLabelEveryHeader(t *testing.T) {
	comments := 0
	for _, stmt := range storage.SchemaStatements {
		if regexp.MustCompile(`^COMMENT ON COLUMN order_sheet\.`).MatchString(stmt) {
			comments++
		}
	}
	assert.Equal(t, len(domain.SheetHeaders), comments)
	assert.Contains(t, storage.SchemaStatements, "COMMENT ON COLUMN order_sheet.order_ref IS 'Order Reference'")
}

func TestPostgresRepository_AppendOrder(t *testing.T) {
	repo, mock := setupRepository(t)
	record := sampleRecord()

	expectSchema(mock)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_sheet (")).
		WithArgs("2025-03-09", "SAH-250309-001", "SAH-250309-004", "Asha Rao", "9876543210", "",
			"12 Temple Road", record.ItemsOrdered, 4, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			"", "Pending", "10:30:00", record.ReceivedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_sheet_items")).
		WithArgs("SAH-250309-001", 1, "Ladoo", sqlmock.AnyArg(), 3, record.ReceivedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_sheet_items")).
		WithArgs("SAH-250309-001", 2, "Kaju Katli", sqlmock.AnyArg(), 1, record.ReceivedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.AppendOrder(context.Background(), record)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_AppendOrderRollsBackOnItemFailure(t *testing.T) {
	repo, mock := setupRepository(t)

	expectSchema(mock)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_sheet (")).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_sheet_items")).WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.AppendOrder(context.Background(), sampleRecord())

	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_AppendOrderTakenRef(t *testing.T) {
	repo, mock := setupRepository(t)
	record := sampleRecord()

	expectSchema(mock)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_sheet (")).
		WithArgs(sqlmock.AnyArg(), "SAH-250309-001", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "order_sheet_order_ref_key"})
	mock.ExpectRollback()

	err := repo.AppendOrder(context.Background(), record)
	assert.ErrorIs(t, err, domain.ErrDuplicateOrderRef)

	record.OrderRef = "SAH-250309-7F3A91C2"
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_sheet (")).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_sheet_items")).
		WithArgs("SAH-250309-7F3A91C2", 1, "Ladoo", sqlmock.AnyArg(), 3, record.ReceivedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_sheet_items")).
		WithArgs("SAH-250309-7F3A91C2", 2, "Kaju Katli", sqlmock.AnyArg(), 1, record.ReceivedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = repo.AppendOrder(context.Background(), record)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_AppendOrderOtherConflictPassesThrough(t *testing.T) {
	repo, mock := setupRepository(t)
	conflict := &pq.Error{Code: "23505", Constraint: "some_other_key"}

	expectSchema(mock)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_sheet (")).WillReturnError(conflict)
	mock.ExpectRollback()

	err := repo.AppendOrder(context.Background(), sampleRecord())

	assert.ErrorIs(t, err, conflict)
	assert.NotErrorIs(t, err, domain.ErrDuplicateOrderRef)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_SchemaRetriedAfterFailure(t *testing.T) {
	repo, mock := setupRepository(t)
	ctx := context.Background()
	entry := domain.ErrorLogEntry{
		Timestamp: time.Date(2025, 3, 9, 10, 30, 1, 0, time.UTC),
		ErrorType: "Email Error",
		Message:   "notification failed: smtp down",
		OrderData: `{"items":[]}`,
		Recipient: "owner@sahasra-homefoods.in",
	}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS order_sheet").WillReturnError(errors.New("permission denied"))
	expectSchema(mock)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_error_log")).
		WithArgs(entry.Timestamp, "Email Error", entry.Message, entry.OrderData, entry.Recipient).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_error_log")).
		WillReturnResult(sqlmock.NewResult(2, 1))

	assert.Error(t, repo.AppendErrorLog(ctx, entry))
	assert.NoError(t, repo.AppendErrorLog(ctx, entry))
	assert.NoError(t, repo.AppendErrorLog(ctx, entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

var recordColumns = []string{
	"order_date", "order_ref", "client_ref", "customer_name", "phone_number", "email", "address",
	"items_ordered", "item_count", "cart_total", "delivery_charges", "grand_total",
	"special_instructions", "status", "order_time", "received_at",
}

func TestPostgresRepository_GetOrder(t *testing.T) {
	repo, mock := setupRepository(t)
	receivedAt := time.Date(2025, 3, 9, 10, 30, 0, 0, time.UTC)

	expectSchema(mock)
	mock.ExpectQuery("SELECT order_date, order_ref").
		WithArgs("SAH-250309-001").
		WillReturnRows(sqlmock.NewRows(recordColumns).AddRow(
			"2025-03-09", "SAH-250309-001", "", "Asha Rao", "9876543210", "", "12 Temple Road",
			"Barfi (Qty: 2, ₹100 each, Total: ₹200)", 2, "200.00", "50.00", "250.00",
			"", "Pending", "10:30:00", receivedAt))
	mock.ExpectQuery("SELECT name, price, quantity").
		WithArgs("SAH-250309-001").
		WillReturnRows(sqlmock.NewRows([]string{"name", "price", "quantity"}).AddRow("Barfi", "100.00", 2))

	rec, err := repo.GetOrder(context.Background(), "SAH-250309-001")

	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", rec.CustomerName)
	assert.True(t, rec.GrandTotal.Equal(decimal.NewFromInt(250)))
	require.Len(t, rec.Items, 1)
	assert.Equal(t, 2, rec.Items[0].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetOrderNotFound(t *testing.T) {
	repo, mock := setupRepository(t)

	expectSchema(mock)
	mock.ExpectQuery("SELECT order_date, order_ref").
		WithArgs("SAH-000000-000").
		WillReturnRows(sqlmock.NewRows(recordColumns))

	rec, err := repo.GetOrder(context.Background(), "SAH-000000-000")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, rec)
}

func TestPostgresRepository_ListOrders(t *testing.T) {
	repo, mock := setupRepository(t)
	receivedAt := time.Date(2025, 3, 9, 10, 30, 0, 0, time.UTC)

	expectSchema(mock)
	mock.ExpectQuery("ORDER BY received_at DESC LIMIT").
		WithArgs(20).
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow("2025-03-09", "SAH-250309-002", "", "Ravi", "9000000000", "", "Guntur",
				"Jalebi (Qty: 1, ₹150 each, Total: ₹150)", 1, "150", "50", "200", "", "Test", "11:00:00", receivedAt).
			AddRow("2025-03-09", "SAH-250309-001", "", "Asha Rao", "9876543210", "", "12 Temple Road",
				"Barfi (Qty: 2, ₹100 each, Total: ₹200)", 2, "200", "50", "250", "", "Pending", "10:30:00", receivedAt))

	records, err := repo.ListOrders(context.Background(), 20)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "SAH-250309-002", records[0].OrderRef)
	assert.Equal(t, domain.StatusTest, records[0].Status)
}

func TestPostgresRepository_UpsertMenuItem(t *testing.T) {
	repo, mock := setupRepository(t)
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	item := &domain.MenuItem{Name: "Ladoo", Price: decimal.NewFromInt(200), Available: true}

	expectSchema(mock)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO menu_items")).
		WithArgs("Ladoo", "", sqlmock.AnyArg(), "", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, createdAt))

	err := repo.UpsertMenuItem(context.Background(), item)

	require.NoError(t, err)
	assert.Equal(t, 7, item.ID)
	assert.Equal(t, createdAt, item.CreatedAt)
}

func TestPostgresRepository_GetMenuItemNotFound(t *testing.T) {
	repo, mock := setupRepository(t)

	expectSchema(mock)
	mock.ExpectQuery("FROM menu_items").
		WithArgs("Halwa").
		WillReturnError(sql.ErrNoRows)

	item, err := repo.GetMenuItem(context.Background(), "Halwa")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, item)
}
