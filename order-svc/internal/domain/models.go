package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending = "Pending"
	StatusTest    = "Test"

	EventOrderPlaced = "order_placed"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type CartItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

func (i CartItem) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderPayload is the normalised order as received from the storefront.
// Totals here are the client's figures and are only advisory.
type OrderPayload struct {
	OrderRef            string
	SubmissionID        string
	Timestamp           string
	Items               []CartItem
	CartTotal           decimal.NullDecimal
	DeliveryCharges     decimal.NullDecimal
	GrandTotal          decimal.NullDecimal
	CustomerName        string
	CustomerPhone       string
	CustomerEmail       string
	CustomerAddress     string
	SpecialInstructions string
	Status              string
	Legacy              bool
}

// OrderRecord is one appended row of the order sheet.
type OrderRecord struct {
	OrderDate           string          `json:"order_date"`
	OrderRef            string          `json:"order_ref"`
	ClientRef           string          `json:"client_ref,omitempty"`
	CustomerName        string          `json:"customer_name"`
	CustomerPhone       string          `json:"customer_phone"`
	CustomerEmail       string          `json:"customer_email"`
	CustomerAddress     string          `json:"customer_address"`
	ItemsOrdered        string          `json:"items_ordered"`
	ItemCount           int             `json:"item_count"`
	CartTotal           decimal.Decimal `json:"cart_total"`
	DeliveryCharges     decimal.Decimal `json:"delivery_charges"`
	GrandTotal          decimal.Decimal `json:"grand_total"`
	SpecialInstructions string          `json:"special_instructions"`
	Status              string          `json:"status"`
	OrderTime           string          `json:"order_time"`
	ReceivedAt          time.Time       `json:"received_at"`
	Items               []CartItem      `json:"items,omitempty"`
}

// SheetHeaders lists the order sheet columns in display order.
var SheetHeaders = []string{
	"Order Date",
	"Order Reference",
	"Customer Name",
	"Phone Number",
	"Email",
	"Address",
	"Items Ordered",
	"Item Count",
	"Cart Total",
	"Delivery Charges",
	"Grand Total",
	"Special Instructions",
	"Status",
	"Order Time",
}

// Row flattens the record into SheetHeaders order.
func (r OrderRecord) Row() []string {
	return []string{
		r.OrderDate,
		r.OrderRef,
		r.CustomerName,
		r.CustomerPhone,
		r.CustomerEmail,
		r.CustomerAddress,
		r.ItemsOrdered,
		decimal.NewFromInt(int64(r.ItemCount)).String(),
		r.CartTotal.String(),
		r.DeliveryCharges.String(),
		r.GrandTotal.String(),
		r.SpecialInstructions,
		r.Status,
		r.OrderTime,
	}
}

type ErrorLogEntry struct {
	Timestamp time.Time
	ErrorType string
	Message   string
	OrderData string
	Recipient string
}

type MenuItem struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Available   bool            `json:"available"`
	CreatedAt   time.Time       `json:"created_at"`
}

type OrderEvent struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OrderRef   string          `json:"order_ref"`
	OrderDate  string          `json:"order_date"`
	Items      []CartItem      `json:"items"`
	ItemCount  int             `json:"item_count"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	Status     string          `json:"status"`
	Timestamp  time.Time       `json:"timestamp"`
}

type SubmitResponse struct {
	Success  bool   `json:"success"`
	OrderRef string `json:"orderRef,omitempty"`
	Error    string `json:"error,omitempty"`
}
