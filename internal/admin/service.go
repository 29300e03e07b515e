package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"xutix/internal/model"
)

type Stats struct {
	Pending    int             `json:"pending"`
	Processing int             `json:"processing"`
	Completed  int             `json:"completed"`
	Cancelled  int             `json:"cancelled"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// Service implements the operator workflow: reviewing placed orders, moving
// them through statuses and recording manual deliveries.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context, status string) ([]Order, error) {
	var filter Status
	if status != "" {
		st, err := ParseStatus(status)
		if err != nil {
			return nil, err
		}
		filter = st
	}

	orders, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *Service) Get(ctx context.Context, id string) (Order, error) {
	return s.repo.Get(ctx, id)
}

// Ingest records a newly placed storefront order as pending.
func (s *Service) Ingest(ctx context.Context, placed model.Order) error {
	if err := s.repo.Create(ctx, FromPlaced(placed)); err != nil {
		return fmt.Errorf("ingest order %s: %w", placed.ID, err)
	}
	return nil
}

// UpdateStatus moves an order to status. Moving to completed stamps the
// delivery time.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (Order, error) {
	st, err := ParseStatus(status)
	if err != nil {
		return Order{}, err
	}

	var deliveredAt *time.Time
	if st == StatusCompleted {
		now := s.now()
		deliveredAt = &now
	}

	if err := s.repo.UpdateStatus(ctx, id, st, deliveredAt); err != nil {
		return Order{}, fmt.Errorf("update status: %w", err)
	}
	slog.Info("order status updated", "order", id, "status", st)

	return s.repo.Get(ctx, id)
}

// Deliver completes an order with the account details handed to the
// customer. Sending the details is done by the operator.
func (s *Service) Deliver(ctx context.Context, id, accountDetails, message string) (Order, error) {
	accountDetails = strings.TrimSpace(accountDetails)
	if accountDetails == "" {
		return Order{}, ErrEmptyAccountDetails
	}

	if err := s.repo.RecordDelivery(ctx, id, accountDetails, s.now()); err != nil {
		return Order{}, fmt.Errorf("deliver order: %w", err)
	}
	slog.Info("order delivered", "order", id, "message", message)

	return s.repo.Get(ctx, id)
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	orders, err := s.repo.List(ctx, "")
	if err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}

	st := Stats{Revenue: decimal.Zero}
	for _, o := range orders {
		switch o.Status {
		case StatusPending:
			st.Pending++
		case StatusProcessing:
			st.Processing++
		case StatusCompleted:
			st.Completed++
			st.Revenue = st.Revenue.Add(o.Total)
		case StatusCancelled:
			st.Cancelled++
		}
	}
	return st, nil
}

// IsDuplicate reports whether err means the order was already ingested.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrOrderExists)
}
