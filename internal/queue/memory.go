package queue

import (
	"context"
	"sync"

	"xutix/internal/model"
)

type MemoryQueue struct {
	mu     sync.Mutex
	orders []model.Order
}

func NewMemoryQueue() *MemoryQueue {
	return &MemoryQueue{}
}

func (q *MemoryQueue) Push(_ context.Context, order model.Order) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.orders = append(q.orders, order)
	return nil
}

func (q *MemoryQueue) Pop(_ context.Context, n int) ([]model.Order, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	n = min(max(n, 0), len(q.orders))
	out := make([]model.Order, n)
	copy(out, q.orders[:n])
	q.orders = q.orders[n:]
	return out, nil
}

func (q *MemoryQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.orders)
}
