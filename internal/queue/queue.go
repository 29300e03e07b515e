// Package queue hands placed orders from the checkout flow to the intake
// worker.
package queue

import (
	"context"

	"xutix/internal/model"
)

type Queue interface {
	Push(ctx context.Context, order model.Order) error
	// Pop removes and returns up to n orders in FIFO order. An empty queue
	// yields an empty slice and no error.
	Pop(ctx context.Context, n int) ([]model.Order, error)
}
