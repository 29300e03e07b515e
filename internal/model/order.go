package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout matches the ISO-8601 form browsers produce for Date.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type LineItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Category  Category        `json:"category"`
	PackageID string          `json:"packageId,omitempty"`
	Options   Selection       `json:"config,omitempty"`
	AddedAt   time.Time       `json:"addedAt"`
}

// IsPackage reports whether the item is a fixed-price package rather than a
// custom configuration.
func (i LineItem) IsPackage() bool {
	return i.PackageID != ""
}

func (i LineItem) Clone() LineItem {
	i.Options = i.Options.Clone()
	return i
}

type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Discord string `json:"discord,omitempty"`
}

// Order is the payment request produced at checkout. It is never mutated
// after creation.
type Order struct {
	ID        string          `json:"orderId"`
	Items     []LineItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Customer  CustomerInfo    `json:"customerInfo"`
	CreatedAt time.Time       `json:"timestamp"`
}

func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		CreatedAt string `json:"timestamp"`
		*Alias
	}{
		CreatedAt: o.CreatedAt.UTC().Format(TimestampLayout),
		Alias:     (*Alias)(&o),
	})
}
