// Package cart holds the shopping cart of a single browsing session and
// turns it into the order payload accepted by the order gateway.
package cart

import (
	"errors"
	"time"

	"sahasra-foods/config"

	"github.com/shopspring/decimal"
)

const (
	MinQuantity = 1
	MaxQuantity = 50

	StatusPending = "Pending"
	StatusTest    = "Test"
)

// DeliveryCharge is added once to every order.
var DeliveryCharge = decimal.NewFromInt(config.DeliveryChargeRupees)

// ErrEmptyCart blocks checkout of a cart with no items.
var ErrEmptyCart = errors.New("cart is empty: add items before placing an order")

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type Item struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

func (i Item) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Totals struct {
	CartTotal       decimal.Decimal `json:"cartTotal"`
	DeliveryCharges decimal.Decimal `json:"deliveryCharges"`
	GrandTotal      decimal.Decimal `json:"grandTotal"`
}

// Cart is an ordered list of items with at most one entry per name.
// It is not safe for concurrent use; callers serialise access.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// ClampQuantity bounds a quantity selector value to [MinQuantity, MaxQuantity].
func ClampQuantity(quantity int) int {
	if quantity < MinQuantity {
		return MinQuantity
	}
	if quantity > MaxQuantity {
		return MaxQuantity
	}
	return quantity
}

// AddItem merges quantity into the existing entry for name or appends a new one.
func (c *Cart) AddItem(name string, unitPrice decimal.Decimal, quantity int) {
	quantity = ClampQuantity(quantity)
	for i := range c.items {
		if c.items[i].Name == name {
			c.items[i].Quantity += quantity
			return
		}
	}
	c.items = append(c.items, Item{Name: name, UnitPrice: unitPrice, Quantity: quantity})
}

// RemoveItem deletes the item at index. Out-of-range indexes are ignored.
func (c *Cart) RemoveItem(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
}

// ChangeQuantity applies delta to the item at index, removing it when the
// result drops to zero or below.
func (c *Cart) ChangeQuantity(index, delta int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	next := c.items[index].Quantity + delta
	if next <= 0 {
		c.RemoveItem(index)
		return
	}
	c.items[index].Quantity = next
}

func (c *Cart) Totals() Totals {
	cartTotal := decimal.Zero
	for _, item := range c.items {
		cartTotal = cartTotal.Add(item.Total())
	}
	return Totals{
		CartTotal:       cartTotal,
		DeliveryCharges: DeliveryCharge,
		GrandTotal:      cartTotal.Add(DeliveryCharge),
	}
}

// Items returns a copy of the cart contents in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

func (c *Cart) Clear() {
	c.items = nil
}

// Customer carries the checkout form fields.
type Customer struct {
	Name                string `json:"customerName"`
	Phone               string `json:"customerPhone"`
	Email               string `json:"customerEmail"`
	Address             string `json:"customerAddress"`
	SpecialInstructions string `json:"specialInstructions"`
}

type OrderPayload struct {
	OrderRef            string          `json:"orderRef"`
	SubmissionID        string          `json:"submissionId,omitempty"`
	Timestamp           string          `json:"timestamp"`
	Items               []Item          `json:"items"`
	CartTotal           decimal.Decimal `json:"cartTotal"`
	DeliveryCharges     decimal.Decimal `json:"deliveryCharges"`
	GrandTotal          decimal.Decimal `json:"grandTotal"`
	CustomerName        string          `json:"customerName"`
	CustomerPhone       string          `json:"customerPhone"`
	CustomerEmail       string          `json:"customerEmail,omitempty"`
	CustomerAddress     string          `json:"customerAddress"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
	Status              string          `json:"status"`
}

// BuildOrderPayload snapshots the cart and customer details into a payload
// with a fresh reference from refs.
func (c *Cart) BuildOrderPayload(customer Customer, refs *RefGenerator, now time.Time) (OrderPayload, error) {
	if c.Empty() {
		return OrderPayload{}, ErrEmptyCart
	}
	totals := c.Totals()
	return OrderPayload{
		OrderRef:            refs.Next(now),
		Timestamp:           now.UTC().Format(time.RFC3339Nano),
		Items:               c.Items(),
		CartTotal:           totals.CartTotal,
		DeliveryCharges:     totals.DeliveryCharges,
		GrandTotal:          totals.GrandTotal,
		CustomerName:        customer.Name,
		CustomerPhone:       customer.Phone,
		CustomerEmail:       customer.Email,
		CustomerAddress:     customer.Address,
		SpecialInstructions: customer.SpecialInstructions,
		Status:              StatusPending,
	}, nil
}
