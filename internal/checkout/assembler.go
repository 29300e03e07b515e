package checkout

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"xutix/internal/cart"
	"xutix/internal/model"
)

// QuickCheckoutCustomer is recorded on orders placed through Buy Now, where
// contact details are collected later over SMS.
var QuickCheckoutCustomer = model.CustomerInfo{
	Name:  "Quick Checkout Customer",
	Phone: "TBD",
}

// Summary is the cart snapshot taken when the customer starts checking out.
type Summary struct {
	Items []model.LineItem `json:"items"`
	Total decimal.Decimal  `json:"total"`
}

type Assembler struct {
	now   func() time.Time
	newID func() (string, error)
}

type Option func(*Assembler)

func WithClock(fn func() time.Time) Option {
	return func(a *Assembler) { a.now = fn }
}

func WithOrderIDs(fn func() (string, error)) Option {
	return func(a *Assembler) { a.newID = fn }
}

func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		now:   time.Now,
		newID: NewOrderID,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func Summarize(c *cart.Cart) Summary {
	return Summary{Items: c.Items(), Total: c.Total()}
}

// CreateOrder turns the cart into a payment request. The order holds its own
// copy of the items, so later cart changes do not affect it.
func (a *Assembler) CreateOrder(c *cart.Cart, info model.CustomerInfo) (*model.Order, error) {
	info.Name = strings.TrimSpace(info.Name)
	info.Phone = strings.TrimSpace(info.Phone)
	info.Discord = strings.TrimSpace(info.Discord)
	if info.Name == "" || info.Phone == "" {
		return nil, ErrIncompleteCustomerInfo
	}
	if c == nil || c.Len() == 0 {
		return nil, ErrEmptyCart
	}

	return a.build(c.Items(), info)
}

// QuickCheckout builds a single-item order for item without asking for
// contact details.
func (a *Assembler) QuickCheckout(item model.LineItem) (*model.Order, error) {
	item = item.Clone()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = a.now()
	}
	return a.build([]model.LineItem{item}, QuickCheckoutCustomer)
}

func (a *Assembler) build(items []model.LineItem, info model.CustomerInfo) (*model.Order, error) {
	id, err := a.newID()
	if err != nil {
		return nil, err
	}

	return &model.Order{
		ID:        id,
		Items:     items,
		Total:     model.SumPrices(items),
		Customer:  info,
		CreatedAt: a.now(),
	}, nil
}
