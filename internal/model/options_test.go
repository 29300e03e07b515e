package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCategory("minecraft-account")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestDecodeOptions_GTA(t *testing.T) {
	raw := json.RawMessage(`{"level": 500, "money": "100", "allProperties": true, "platform": "ps5", "rank": "gold"}`)

	opts, err := DecodeOptions(CategoryGTA, raw)
	require.NoError(t, err)
	assert.Equal(t, CategoryGTA, opts.Category())

	gta, ok := opts.(*GTAOptions)
	require.True(t, ok)
	assert.Equal(t, Quantity(500), gta.Level)
	assert.Equal(t, Quantity(100), gta.Money)
	assert.True(t, gta.AllProperties)

	sel := opts.Selection()
	assert.Equal(t, int64(500), sel[KeyLevel].Quantity())
	assert.Equal(t, "ps5", sel[KeyPlatform].String())
	_, hasRank := sel[KeyRank]
	assert.False(t, hasRank, "keys outside the category are dropped")
	_, hasOutfits := sel[KeyModdedOutfits]
	assert.False(t, hasOutfits, "unset toggles are omitted")
}

func TestDecodeOptions_EachCategory(t *testing.T) {
	tests := []struct {
		category Category
		raw      string
		key      string
	}{
		{CategoryFortnite, `{"accountType":"vbucks","vbucksAmount":21000}`, KeyVBucksAmount},
		{CategoryValorant, `{"rank":"diamond","prime":true}`, KeyPrime},
		{CategoryR6, `{"rank":"gold","renownCredits":5000}`, KeyRenownCredits},
		{CategoryDeviceUnlock, `{"package":"full"}`, KeyPackage},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			opts, err := DecodeOptions(tt.category, json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.category, opts.Category())
			_, ok := opts.Selection().Get(tt.key)
			assert.True(t, ok)
		})
	}
}

func TestDecodeOptions_EmptyAndPC(t *testing.T) {
	opts, err := DecodeOptions(CategoryValorant, nil)
	require.NoError(t, err)
	assert.Empty(t, opts.Selection())

	opts, err = DecodeOptions(CategoryPCOptimization, json.RawMessage(`{"anything":1}`))
	require.NoError(t, err)
	assert.Empty(t, opts.Selection())
}

func TestDecodeOptions_Errors(t *testing.T) {
	_, err := DecodeOptions("unknown", nil)
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = DecodeOptions(CategoryValorant, json.RawMessage(`{"prime":"yes"}`))
	assert.Error(t, err)
}

func TestOrder_MarshalJSON(t *testing.T) {
	o := Order{
		ID:       "ORD-ABC123XYZ",
		Total:    decimal.RequireFromString("144.99"),
		Customer: CustomerInfo{Name: "John Doe", Phone: "555"},
		Items: []LineItem{{
			ID:        "item-1",
			Name:      "Custom GTA V Account",
			UnitPrice: decimal.RequireFromString("144.99"),
			Category:  CategoryGTA,
			Options:   Selection{KeyLevel: Int(500)},
		}},
		CreatedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	}

	data, err := json.Marshal(o)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "2024-01-15T10:30:00.000Z", raw["timestamp"])
	assert.Equal(t, 144.99, raw["total"])
	assert.Equal(t, "ORD-ABC123XYZ", raw["orderId"])

	var back Order
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, o.CreatedAt.Equal(back.CreatedAt))
	assert.True(t, o.Total.Equal(back.Total))
	assert.Equal(t, o.Items[0].Options, back.Items[0].Options)
}

func TestSumPrices(t *testing.T) {
	items := []LineItem{
		{UnitPrice: decimal.NewFromInt(10)},
		{UnitPrice: decimal.RequireFromString("4.99")},
	}
	assert.Equal(t, "14.99", FormatPrice(SumPrices(items)))
	assert.Equal(t, "0.00", FormatPrice(SumPrices(nil)))
}
