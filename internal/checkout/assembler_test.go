package checkout

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xutix/internal/cart"
	"xutix/internal/model"
)

var orderIDPattern = regexp.MustCompile(`^ORD-[A-Z0-9]{9}$`)

var fixedTime = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func newTestAssembler() *Assembler {
	return NewAssembler(
		WithClock(func() time.Time { return fixedTime }),
		WithOrderIDs(func() (string, error) { return "ORD-TEST00001", nil }),
	)
}

func filledCart() *cart.Cart {
	c := cart.New()
	c.Add(model.LineItem{
		Name:      "Custom GTA V Account",
		UnitPrice: decimal.RequireFromString("144.99"),
		Category:  model.CategoryGTA,
		Options:   model.Selection{model.KeyMoney: model.Int(100)},
	})
	c.Add(model.LineItem{
		Name:      "Nugget iOS Jailbreak",
		UnitPrice: decimal.NewFromInt(10),
		Category:  model.CategoryDeviceUnlock,
		PackageID: "jailbreak-nugget",
	})
	return c
}

func TestNewOrderID_Format(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		id, err := NewOrderID()
		require.NoError(t, err)
		assert.Regexp(t, orderIDPattern, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 495)
}

func TestCreateOrder(t *testing.T) {
	a := newTestAssembler()
	c := filledCart()

	order, err := a.CreateOrder(c, model.CustomerInfo{Name: " Ada ", Phone: "555-0100", Discord: "ada#1"})
	require.NoError(t, err)

	assert.Equal(t, "ORD-TEST00001", order.ID)
	assert.Equal(t, fixedTime, order.CreatedAt)
	assert.Equal(t, "Ada", order.Customer.Name)
	assert.Equal(t, "ada#1", order.Customer.Discord)
	assert.Equal(t, "154.99", model.FormatPrice(order.Total))
	assert.Equal(t, c.Items(), order.Items)
}

func TestCreateOrder_DefaultIDMatchesPattern(t *testing.T) {
	order, err := NewAssembler().CreateOrder(filledCart(), model.CustomerInfo{Name: "Ada", Phone: "555"})
	require.NoError(t, err)
	assert.Regexp(t, orderIDPattern, order.ID)
}

func TestCreateOrder_SnapshotIsIndependent(t *testing.T) {
	c := filledCart()
	order, err := newTestAssembler().CreateOrder(c, model.CustomerInfo{Name: "Ada", Phone: "555"})
	require.NoError(t, err)

	order.Items[0].Options[model.KeyMoney] = model.Int(1)
	assert.Equal(t, int64(100), c.Items()[0].Options[model.KeyMoney].Quantity())

	c.Add(model.LineItem{Name: "extra", UnitPrice: decimal.NewFromInt(50)})
	c.Remove(order.Items[0].ID)
	c.Clear()

	assert.Len(t, order.Items, 2)
	assert.Equal(t, "154.99", model.FormatPrice(order.Total))
}

func TestCreateOrder_IncompleteCustomerInfo(t *testing.T) {
	tests := []struct {
		name string
		info model.CustomerInfo
	}{
		{"empty", model.CustomerInfo{}},
		{"no phone", model.CustomerInfo{Name: "Ada"}},
		{"no name", model.CustomerInfo{Phone: "555"}},
		{"whitespace", model.CustomerInfo{Name: "  ", Phone: "\t"}},
		{"discord only", model.CustomerInfo{Discord: "ada#1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := newTestAssembler().CreateOrder(filledCart(), tt.info)
			assert.ErrorIs(t, err, ErrIncompleteCustomerInfo)
			assert.Nil(t, order)
		})
	}
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	info := model.CustomerInfo{Name: "Ada", Phone: "555"}

	_, err := newTestAssembler().CreateOrder(cart.New(), info)
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = newTestAssembler().CreateOrder(nil, info)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCreateOrder_IDFailure(t *testing.T) {
	boom := errors.New("entropy exhausted")
	a := NewAssembler(WithOrderIDs(func() (string, error) { return "", boom }))

	_, err := a.CreateOrder(filledCart(), model.CustomerInfo{Name: "Ada", Phone: "555"})
	assert.ErrorIs(t, err, boom)
}

func TestQuickCheckout(t *testing.T) {
	item := model.LineItem{
		Name:      "Custom Valorant Account",
		UnitPrice: decimal.NewFromInt(135),
		Category:  model.CategoryValorant,
	}

	order, err := newTestAssembler().QuickCheckout(item)
	require.NoError(t, err)

	assert.Equal(t, QuickCheckoutCustomer, order.Customer)
	require.Len(t, order.Items, 1)
	assert.NotEmpty(t, order.Items[0].ID)
	assert.Equal(t, fixedTime, order.Items[0].AddedAt)
	assert.True(t, decimal.NewFromInt(135).Equal(order.Total))
}

func TestSummarize(t *testing.T) {
	s := Summarize(filledCart())
	assert.Len(t, s.Items, 2)
	assert.Equal(t, "154.99", model.FormatPrice(s.Total))

	empty := Summarize(cart.New())
	assert.Empty(t, empty.Items)
	assert.True(t, empty.Total.IsZero())
}
