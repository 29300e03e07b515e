package admin

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"xutix/internal/model"
	"xutix/internal/pricing"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderExists         = errors.New("order already exists")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrEmptyAccountDetails = errors.New("account details are required for delivery")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func Statuses() []Status {
	return []Status{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled}
}

func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Order is the operator's view of a placed order.
type Order struct {
	ID              string           `json:"id"`
	CustomerName    string           `json:"customerName"`
	CustomerPhone   string           `json:"customerPhone"`
	CustomerDiscord string           `json:"customerDiscord,omitempty"`
	Items           []model.LineItem `json:"items"`
	Total           decimal.Decimal  `json:"total"`
	Status          Status           `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
	DeliveredAt     *time.Time       `json:"deliveredAt,omitempty"`
	AccountDetails  string           `json:"accountDetails,omitempty"`
}

// FromPlaced converts a checkout order into a pending admin order.
func FromPlaced(o model.Order) Order {
	items := make([]model.LineItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = it.Clone()
	}
	return Order{
		ID:              o.ID,
		CustomerName:    o.Customer.Name,
		CustomerPhone:   o.Customer.Phone,
		CustomerDiscord: o.Customer.Discord,
		Items:           items,
		Total:           o.Total,
		Status:          StatusPending,
		CreatedAt:       o.CreatedAt,
	}
}

// DemoOrders returns the sample orders the dashboard starts with when no
// database is configured. Item prices come from the default price list.
func DemoOrders() []Order {
	calc := pricing.NewCalculator(nil)
	delivered := time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)

	orders := []Order{
		{
			ID:            "ORD-001",
			CustomerName:  "John Doe",
			CustomerPhone: "7656156371",
			Items: []model.LineItem{mustItem(calc.ConfigureItem(&model.GTAOptions{
				Level:         500,
				Money:         100,
				AllProperties: true,
				ModdedStats:   true,
			}))},
			Status:    StatusPending,
			CreatedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:            "ORD-002",
			CustomerName:  "Jane Smith",
			CustomerPhone: "7656156371",
			Items: []model.LineItem{mustItem(calc.ConfigureItem(&model.FortniteOptions{
				AccountType: "og",
				SkinCount:   50,
			}))},
			Status:    StatusProcessing,
			CreatedAt: time.Date(2024, 1, 15, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:            "ORD-003",
			CustomerName:  "Mike Johnson",
			CustomerPhone: "7656156371",
			Items:         []model.LineItem{mustItem(calc.PackageItem("jailbreak-full"))},
			Status:        StatusCompleted,
			CreatedAt:     time.Date(2024, 1, 14, 16, 45, 0, 0, time.UTC),
			DeliveredAt:   &delivered,
		},
	}

	for i := range orders {
		for j := range orders[i].Items {
			orders[i].Items[j].ID = fmt.Sprintf("%s-%d", orders[i].ID, j+1)
			orders[i].Items[j].AddedAt = orders[i].CreatedAt
		}
		orders[i].Total = model.SumPrices(orders[i].Items)
	}
	return orders
}

// mustItem panics on errors from the static demo catalog lookups.
func mustItem(item model.LineItem, err error) model.LineItem {
	if err != nil {
		panic(fmt.Sprintf("demo order item: %v", err))
	}
	return item
}
