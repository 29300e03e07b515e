package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"xutix/internal/model"
)

// Cart is an ordered list of line items owned by one session.
// It is not safe for concurrent use.
type Cart struct {
	items []model.LineItem
	newID func() string
	now   func() time.Time
}

type Option func(*Cart)

func WithIDGenerator(fn func() string) Option {
	return func(c *Cart) { c.newID = fn }
}

func WithClock(fn func() time.Time) Option {
	return func(c *Cart) { c.now = fn }
}

func New(opts ...Option) *Cart {
	c := &Cart{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add appends item under a fresh id and returns the stored copy.
// Identical items are kept as separate entries.
func (c *Cart) Add(item model.LineItem) model.LineItem {
	item = item.Clone()
	item.ID = c.newID()
	item.AddedAt = c.now()
	c.items = append(c.items, item)
	return item.Clone()
}

// Remove drops the item with the given id and reports whether it was present.
func (c *Cart) Remove(id string) bool {
	for i, it := range c.items {
		if it.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Total() decimal.Decimal {
	return model.SumPrices(c.items)
}

func (c *Cart) Items() []model.LineItem {
	out := make([]model.LineItem, len(c.items))
	for i, it := range c.items {
		out[i] = it.Clone()
	}
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) Clear() {
	c.items = nil
}

// Restore replaces the contents with previously stored items, keeping their
// ids and timestamps.
func (c *Cart) Restore(items []model.LineItem) {
	c.items = make([]model.LineItem, 0, len(items))
	for _, it := range items {
		c.items = append(c.items, it.Clone())
	}
}
