package cart_test

import (
	"encoding/json"
	"testing"
	"time"

	"sahasra-foods/storefront/internal/cart"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestCart_AddItemMergesByName(t *testing.T) {
	c := cart.New()
	c.AddItem("Ladoo", price(200), 2)
	c.AddItem("Ladoo", price(200), 1)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.True(t, items[0].Total().Equal(price(600)))

	totals := c.Totals()
	assert.True(t, totals.CartTotal.Equal(price(600)))
	assert.True(t, totals.GrandTotal.Equal(price(650)))
}

func TestCart_AddItemSumsQuantities(t *testing.T) {
	c := cart.New()
	added := []int{1, 4, 7, 2}
	for _, q := range added {
		c.AddItem("Mysore Pak", price(150), q)
	}
	c.AddItem("Barfi", price(100), 1)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Mysore Pak", items[0].Name)
	assert.Equal(t, 14, items[0].Quantity)
}

func TestCart_AddItemClampsQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		want     int
	}{
		{name: "zero", quantity: 0, want: 1},
		{name: "negative", quantity: -3, want: 1},
		{name: "in range", quantity: 12, want: 12},
		{name: "above max", quantity: 99, want: 50},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			c := cart.New()
			c.AddItem("Ladoo", price(200), testCase.quantity)
			assert.Equal(t, testCase.want, c.Items()[0].Quantity)
		})
	}
}

func TestCart_RemoveItemKeepsOrder(t *testing.T) {
	c := cart.New()
	c.AddItem("Ladoo", price(200), 1)
	c.AddItem("Barfi", price(100), 1)
	c.AddItem("Jalebi", price(120), 1)

	c.RemoveItem(1)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Ladoo", items[0].Name)
	assert.Equal(t, "Jalebi", items[1].Name)
}

func TestCart_RemoveItemOutOfRange(t *testing.T) {
	c := cart.New()
	c.AddItem("Ladoo", price(200), 1)

	c.RemoveItem(5)
	c.RemoveItem(-1)

	assert.Equal(t, 1, c.Len())
}

func TestCart_ChangeQuantity(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		delta     int
		wantLen   int
		wantFirst int
	}{
		{name: "increment", index: 0, delta: 1, wantLen: 2, wantFirst: 3},
		{name: "decrement", index: 0, delta: -1, wantLen: 2, wantFirst: 1},
		{name: "drop to zero removes", index: 0, delta: -2, wantLen: 1},
		{name: "below zero removes", index: 0, delta: -10, wantLen: 1},
		{name: "out of range ignored", index: 7, delta: 1, wantLen: 2, wantFirst: 2},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			c := cart.New()
			c.AddItem("Ladoo", price(200), 2)
			c.AddItem("Barfi", price(100), 1)

			c.ChangeQuantity(testCase.index, testCase.delta)

			items := c.Items()
			require.Len(t, items, testCase.wantLen)
			if testCase.wantLen == 1 {
				assert.Equal(t, "Barfi", items[0].Name)
				return
			}
			assert.Equal(t, testCase.wantFirst, items[0].Quantity)
		})
	}
}

func TestCart_TotalsArePure(t *testing.T) {
	c := cart.New()
	c.AddItem("Ladoo", price(200), 2)
	c.AddItem("Kaju Katli", decimal.RequireFromString("449.50"), 1)

	first := c.Totals()
	second := c.Totals()

	assert.True(t, first.CartTotal.Equal(second.CartTotal))
	assert.True(t, first.GrandTotal.Equal(second.GrandTotal))
	assert.True(t, first.GrandTotal.Sub(first.CartTotal).Equal(cart.DeliveryCharge))
	assert.Equal(t, "849.5", first.CartTotal.String())
}

func TestCart_EmptyTotals(t *testing.T) {
	totals := cart.New().Totals()
	assert.True(t, totals.CartTotal.IsZero())
	assert.True(t, totals.GrandTotal.Equal(price(50)))
}

func TestCart_BuildOrderPayload(t *testing.T) {
	now := time.Date(2025, 3, 9, 10, 30, 0, 0, time.UTC)
	refs := cart.NewRefGenerator("SAH")

	c := cart.New()
	_, err := c.BuildOrderPayload(cart.Customer{Name: "Asha"}, refs, now)
	assert.ErrorIs(t, err, cart.ErrEmptyCart)

	c.AddItem("Ladoo", price(200), 3)
	payload, err := c.BuildOrderPayload(cart.Customer{
		Name:    "Asha",
		Phone:   "9876543210",
		Address: "12 Temple Road",
	}, refs, now)
	require.NoError(t, err)

	assert.Equal(t, "SAH-250309-001", payload.OrderRef)
	assert.Equal(t, "2025-03-09T10:30:00Z", payload.Timestamp)
	assert.Equal(t, cart.StatusPending, payload.Status)
	assert.True(t, payload.GrandTotal.Equal(price(650)))

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"grandTotal":650`)
	assert.Contains(t, string(raw), `"items":[{"name":"Ladoo","price":200,"quantity":3}]`)
	assert.NotContains(t, string(raw), "customerEmail")
}

func TestCart_Clear(t *testing.T) {
	c := cart.New()
	c.AddItem("Ladoo", price(200), 1)
	c.Clear()
	assert.True(t, c.Empty())
}

func TestRefGenerator_Next(t *testing.T) {
	refs := cart.NewRefGenerator("")
	day := time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, "SAH-241231-001", refs.Next(day))
	assert.Equal(t, "SAH-241231-002", refs.Next(day))
	assert.Equal(t, "SAH-250101-003", refs.Next(day.Add(2*time.Hour)))
}
