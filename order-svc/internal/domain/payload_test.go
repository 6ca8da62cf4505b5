package domain_test

import (
	"testing"

	"sahasra-foods/order-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   bool
		wantItems []domain.CartItem
		legacy    bool
	}{
		{
			name: "items array",
			body: `{"items":[{"name":"Ladoo","price":200,"quantity":3}],"customerName":" Asha "}`,
			wantItems: []domain.CartItem{
				{Name: "Ladoo", Price: decimal.NewFromInt(200), Quantity: 3},
			},
		},
		{
			name: "legacy single item",
			body: `{"itemName":"Barfi","itemPrice":100,"quantity":2}`,
			wantItems: []domain.CartItem{
				{Name: "Barfi", Price: decimal.NewFromInt(100), Quantity: 2},
			},
			legacy: true,
		},
		{
			name: "legacy defaults",
			body: `{}`,
			wantItems: []domain.CartItem{
				{Name: "N/A", Price: decimal.Zero, Quantity: 1},
			},
			legacy: true,
		},
		{
			name: "legacy zero quantity counts as one",
			body: `{"itemName":"Barfi","itemPrice":100,"quantity":0}`,
			wantItems: []domain.CartItem{
				{Name: "Barfi", Price: decimal.NewFromInt(100), Quantity: 1},
			},
			legacy: true,
		},
		{
			name: "legacy negative quantity counts as one",
			body: `{"itemName":"Barfi","itemPrice":100,"quantity":-2}`,
			wantItems: []domain.CartItem{
				{Name: "Barfi", Price: decimal.NewFromInt(100), Quantity: 1},
			},
			legacy: true,
		},
		{name: "empty body", body: "", wantErr: true},
		{name: "not json", body: "{items", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			payload, err := domain.ParsePayload([]byte(testCase.body))

			if testCase.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.legacy, payload.Legacy)
			require.Len(t, payload.Items, len(testCase.wantItems))
			for i, want := range testCase.wantItems {
				assert.Equal(t, want.Name, payload.Items[i].Name)
				assert.True(t, want.Price.Equal(payload.Items[i].Price))
				assert.Equal(t, want.Quantity, payload.Items[i].Quantity)
			}
		})
	}
}

func TestParsePayload_LegacyItemTotalBecomesCartTotal(t *testing.T) {
	payload, err := domain.ParsePayload([]byte(`{"itemName":"Barfi","itemPrice":100,"quantity":2,"itemTotal":200}`))

	require.NoError(t, err)
	assert.True(t, payload.CartTotal.Valid)
	assert.True(t, payload.CartTotal.Decimal.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 2, payload.ItemCount())
}

func TestItemsSummary(t *testing.T) {
	summary := domain.ItemsSummary([]domain.CartItem{
		{Name: "Ladoo", Price: decimal.NewFromInt(200), Quantity: 3},
		{Name: "Kaju Katli", Price: decimal.RequireFromString("450.5"), Quantity: 1},
	})

	assert.Equal(t, "Ladoo (Qty: 3, ₹200 each, Total: ₹600) | Kaju Katli (Qty: 1, ₹450.5 each, Total: ₹450.5)", summary)
}

func TestOrderRecord_RowFollowsHeaders(t *testing.T) {
	record := domain.OrderRecord{OrderRef: "SAH-250309-001", ItemCount: 4, GrandTotal: decimal.NewFromInt(1100), OrderTime: "10:30:00"}
	row := record.Row()

	require.Len(t, row, len(domain.SheetHeaders))
	assert.Equal(t, "SAH-250309-001", row[1])
	assert.Equal(t, "4", row[7])
	assert.Equal(t, "1100", row[10])
	assert.Equal(t, "10:30:00", row[13])
}
