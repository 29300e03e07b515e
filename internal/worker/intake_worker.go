package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"xutix/internal/admin"
	"xutix/internal/model"
	"xutix/internal/queue"
)

type Ingester interface {
	Ingest(ctx context.Context, placed model.Order) error
}

// IntakeWorker moves placed orders from the intake queue into the admin
// repository.
type IntakeWorker struct {
	queue     queue.Queue
	admin     Ingester
	interval  time.Duration
	batchSize int
}

func NewIntakeWorker(q queue.Queue, a Ingester, interval time.Duration) *IntakeWorker {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &IntakeWorker{
		queue:     q,
		admin:     a,
		interval:  interval,
		batchSize: 20,
	}
}

func (w *IntakeWorker) Start(ctx context.Context) {
	slog.Info("starting intake worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("intake worker stopped")
			return
		case <-ticker.C:
			if _, err := w.processBatch(ctx); err != nil {
				slog.Error("batch processing failed", "error", err)
			}
		}
	}
}

// processBatch returns the number of orders ingested. Orders that fail for
// any reason other than being ingested already go back on the queue for the
// next batch.
func (w *IntakeWorker) processBatch(ctx context.Context) (int, error) {
	orders, err := w.queue.Pop(ctx, w.batchSize)
	if err != nil {
		return 0, fmt.Errorf("pop placed orders: %w", err)
	}

	ingested := 0
	for _, order := range orders {
		err := w.admin.Ingest(ctx, order)
		switch {
		case err == nil:
			ingested++
			slog.Info("order ingested", "order", order.ID, "total", model.FormatPrice(order.Total))
		case admin.IsDuplicate(err):
			slog.Warn("order already ingested, skipping", "order", order.ID)
		default:
			slog.Error("failed to ingest order, requeueing", "order", order.ID, "error", err)
			if err := w.queue.Push(ctx, order); err != nil {
				slog.Error("failed to requeue order", "order", order.ID,
					"total", model.FormatPrice(order.Total), "customer", order.Customer.Phone, "error", err)
			}
		}
	}

	return ingested, nil
}
