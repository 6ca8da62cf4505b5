package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyBody = errors.New("request body is empty")
	ErrNotFound  = errors.New("not found")

	ErrDuplicateOrderRef = errors.New("order reference already recorded")
)

// wirePayload mirrors the storefront JSON, including the single-item fields
// sent by older pages.
type wirePayload struct {
	OrderRef            string              `json:"orderRef"`
	SubmissionID        string              `json:"submissionId"`
	Timestamp           string              `json:"timestamp"`
	Items               []CartItem          `json:"items"`
	CartTotal           decimal.NullDecimal `json:"cartTotal"`
	DeliveryCharges     decimal.NullDecimal `json:"deliveryCharges"`
	GrandTotal          decimal.NullDecimal `json:"grandTotal"`
	CustomerName        string              `json:"customerName"`
	CustomerPhone       string              `json:"customerPhone"`
	CustomerEmail       string              `json:"customerEmail"`
	CustomerAddress     string              `json:"customerAddress"`
	SpecialInstructions string              `json:"specialInstructions"`
	Status              string              `json:"status"`

	ItemName  string              `json:"itemName"`
	ItemPrice decimal.NullDecimal `json:"itemPrice"`
	ItemTotal decimal.NullDecimal `json:"itemTotal"`
	Quantity  *int                `json:"quantity"`
}

// ParsePayload decodes a storefront order body. A body without an items
// array is read as a legacy single-item order and becomes a one-element list.
func ParsePayload(raw []byte) (OrderPayload, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return OrderPayload{}, ErrEmptyBody
	}

	var wire wirePayload
	if err := json.Unmarshal(raw, &wire); err != nil {
		return OrderPayload{}, fmt.Errorf("invalid JSON: %w", err)
	}

	payload := OrderPayload{
		OrderRef:            strings.TrimSpace(wire.OrderRef),
		SubmissionID:        strings.TrimSpace(wire.SubmissionID),
		Timestamp:           wire.Timestamp,
		Items:               wire.Items,
		CartTotal:           wire.CartTotal,
		DeliveryCharges:     wire.DeliveryCharges,
		GrandTotal:          wire.GrandTotal,
		CustomerName:        strings.TrimSpace(wire.CustomerName),
		CustomerPhone:       strings.TrimSpace(wire.CustomerPhone),
		CustomerEmail:       strings.TrimSpace(wire.CustomerEmail),
		CustomerAddress:     strings.TrimSpace(wire.CustomerAddress),
		SpecialInstructions: strings.TrimSpace(wire.SpecialInstructions),
		Status:              wire.Status,
	}

	if wire.Items == nil {
		payload.Legacy = true
		quantity := 1
		if wire.Quantity != nil && *wire.Quantity > 0 {
			quantity = *wire.Quantity
		}
		name := wire.ItemName
		if name == "" {
			name = "N/A"
		}
		price := decimal.Zero
		if wire.ItemPrice.Valid {
			price = wire.ItemPrice.Decimal
		}
		payload.Items = []CartItem{{Name: name, Price: price, Quantity: quantity}}
		if !payload.CartTotal.Valid && wire.ItemTotal.Valid {
			payload.CartTotal = wire.ItemTotal
		}
	}

	return payload, nil
}

// ItemCount is the number of units across all items.
func (p OrderPayload) ItemCount() int {
	count := 0
	for _, item := range p.Items {
		count += item.Quantity
	}
	return count
}

// ItemsSummary renders items as "Name (Qty: 2, ₹200 each, Total: ₹400) | ...".
func ItemsSummary(items []CartItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s (Qty: %d, ₹%s each, Total: ₹%s)",
			item.Name, item.Quantity, item.Price.String(), item.Total().String()))
	}
	return strings.Join(parts, " | ")
}
