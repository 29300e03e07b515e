package admin

import (
	"context"
	"time"
)

// Repository stores admin orders. List returns newest first; an empty status
// lists every order.
type Repository interface {
	List(ctx context.Context, status Status) ([]Order, error)
	Get(ctx context.Context, id string) (Order, error)
	Create(ctx context.Context, o Order) error
	UpdateStatus(ctx context.Context, id string, status Status, deliveredAt *time.Time) error
	RecordDelivery(ctx context.Context, id, accountDetails string, deliveredAt time.Time) error
}
