package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderPlaced = "order_placed"
	StatusTest       = "Test"

	PeriodToday = "today"
	PeriodAll   = "all"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type OrderItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// OrderEvent is the message published by order-svc for every recorded order.
type OrderEvent struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OrderRef   string          `json:"order_ref"`
	OrderDate  string          `json:"order_date"`
	Items      []OrderItem     `json:"items"`
	ItemCount  int             `json:"item_count"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	Status     string          `json:"status"`
	Timestamp  time.Time       `json:"timestamp"`
}

type ItemSales struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

type DailyRevenue struct {
	Date    string          `json:"date"`
	Orders  int64           `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}
