package admin

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]Order
}

func NewMemoryRepository(seed ...Order) *MemoryRepository {
	r := &MemoryRepository{orders: make(map[string]Order, len(seed))}
	for _, o := range seed {
		r.orders[o.ID] = o
	}
	return r
}

func (r *MemoryRepository) List(_ context.Context, status Status) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0, len(r.orders))
	for _, o := range r.orders {
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (r *MemoryRepository) Create(_ context.Context, o Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID]; ok {
		return ErrOrderExists
	}
	r.orders[o.ID] = o
	return nil
}

func (r *MemoryRepository) UpdateStatus(_ context.Context, id string, status Status, deliveredAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	o.Status = status
	if deliveredAt != nil {
		at := *deliveredAt
		o.DeliveredAt = &at
	}
	r.orders[id] = o
	return nil
}

func (r *MemoryRepository) RecordDelivery(_ context.Context, id, accountDetails string, deliveredAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	o.Status = StatusCompleted
	o.AccountDetails = accountDetails
	o.DeliveredAt = &deliveredAt
	r.orders[id] = o
	return nil
}
