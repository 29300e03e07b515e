// Package session persists per-visitor storefront state (the cart, the
// checkout snapshot and the placed order) in a store.Store under
// session-scoped keys.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"xutix/internal/cart"
	"xutix/internal/checkout"
	"xutix/internal/model"
	"xutix/internal/store"
)

var ErrNoActiveCheckout = errors.New("no active checkout")

const (
	cartPrefix     = "cart:"
	checkoutPrefix = "checkoutData:"
	paymentPrefix  = "paymentData:"
)

type Manager struct {
	store   store.Store
	newCart func() *cart.Cart
}

func NewManager(s store.Store, opts ...cart.Option) *Manager {
	return &Manager{
		store:   s,
		newCart: func() *cart.Cart { return cart.New(opts...) },
	}
}

type cartRecord struct {
	Items []model.LineItem `json:"items"`
}

// LoadCart returns the session's cart, or an empty one if nothing was saved.
func (m *Manager) LoadCart(ctx context.Context, sid string) (*cart.Cart, error) {
	c := m.newCart()

	var rec cartRecord
	err := m.load(ctx, cartPrefix+sid, &rec)
	if errors.Is(err, store.ErrNotFound) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	c.Restore(rec.Items)
	return c, nil
}

func (m *Manager) SaveCart(ctx context.Context, sid string, c *cart.Cart) error {
	if c.Len() == 0 {
		if err := m.store.Delete(ctx, cartPrefix+sid); err != nil {
			return fmt.Errorf("save cart: %w", err)
		}
		return nil
	}
	if err := m.save(ctx, cartPrefix+sid, cartRecord{Items: c.Items()}); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// StartCheckout records the cart snapshot shown on the checkout page.
func (m *Manager) StartCheckout(ctx context.Context, sid string, s checkout.Summary) error {
	if err := m.save(ctx, checkoutPrefix+sid, s); err != nil {
		return fmt.Errorf("start checkout: %w", err)
	}
	return nil
}

func (m *Manager) Checkout(ctx context.Context, sid string) (checkout.Summary, error) {
	var s checkout.Summary
	if err := m.loadActive(ctx, checkoutPrefix+sid, &s); err != nil {
		return checkout.Summary{}, fmt.Errorf("load checkout: %w", err)
	}
	return s, nil
}

// SavePayment records the placed order for the payment verification page.
func (m *Manager) SavePayment(ctx context.Context, sid string, order *model.Order) error {
	if err := m.save(ctx, paymentPrefix+sid, order); err != nil {
		return fmt.Errorf("save payment: %w", err)
	}
	return nil
}

func (m *Manager) Payment(ctx context.Context, sid string) (*model.Order, error) {
	var o model.Order
	if err := m.loadActive(ctx, paymentPrefix+sid, &o); err != nil {
		return nil, fmt.Errorf("load payment: %w", err)
	}
	return &o, nil
}

func (m *Manager) ClearCheckout(ctx context.Context, sid string) error {
	if err := m.store.Delete(ctx, checkoutPrefix+sid); err != nil {
		return fmt.Errorf("clear checkout: %w", err)
	}
	return nil
}

func (m *Manager) loadActive(ctx context.Context, key string, v any) error {
	err := m.load(ctx, key, v)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNoActiveCheckout
	}
	return err
}

func (m *Manager) load(ctx context.Context, key string, v any) error {
	data, err := m.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}

func (m *Manager) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return m.store.Set(ctx, key, data)
}
