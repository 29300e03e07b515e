package model

import "github.com/shopspring/decimal"

func init() {
	// Prices travel as JSON numbers, the shape browser clients store.
	decimal.MarshalJSONWithoutQuotes = true
}

// FormatPrice renders an amount the way it is displayed: two decimals, no symbol.
func FormatPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// SumPrices adds up the unit prices of items.
func SumPrices(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitPrice)
	}
	return total
}
