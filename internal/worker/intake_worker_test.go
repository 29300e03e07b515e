package worker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xutix/internal/admin"
	"xutix/internal/model"
	"xutix/internal/queue"
)

func placed(id string) model.Order {
	return model.Order{
		ID:        id,
		Items:     []model.LineItem{{ID: "i", Name: "Nugget iOS Jailbreak", UnitPrice: decimal.NewFromInt(10)}},
		Total:     decimal.NewFromInt(10),
		Customer:  model.CustomerInfo{Name: "Ada", Phone: "555"},
		CreatedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	}
}

// failingIngester fails the first failures[id] attempts for an order.
type failingIngester struct {
	failures map[string]int
	seen     []string
}

func (f *failingIngester) Ingest(_ context.Context, o model.Order) error {
	f.seen = append(f.seen, o.ID)
	if f.failures[o.ID] > 0 {
		f.failures[o.ID]--
		return errors.New("db down")
	}
	return nil
}

type brokenQueue struct{}

func (brokenQueue) Push(context.Context, model.Order) error { return nil }
func (brokenQueue) Pop(context.Context, int) ([]model.Order, error) {
	return nil, errors.New("connection refused")
}

func TestProcessBatch_IngestsPending(t *testing.T) {
	ctx := context.Background()
	q := queue.NewMemoryQueue()
	svc := admin.NewService(admin.NewMemoryRepository())
	w := NewIntakeWorker(q, svc, time.Minute)

	require.NoError(t, q.Push(ctx, placed("ORD-AAAAAAAA1")))
	require.NoError(t, q.Push(ctx, placed("ORD-AAAAAAAA2")))

	n, err := w.processBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, q.Len())

	orders, err := svc.List(ctx, "pending")
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestProcessBatch_BatchSize(t *testing.T) {
	ctx := context.Background()
	q := queue.NewMemoryQueue()
	w := NewIntakeWorker(q, admin.NewService(admin.NewMemoryRepository()), time.Minute)
	w.batchSize = 2

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Push(ctx, placed(fmt.Sprintf("ORD-AAAAAAAA%d", i))))
	}

	n, err := w.processBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, q.Len())
}

func TestProcessBatch_DuplicatesAreSkipped(t *testing.T) {
	ctx := context.Background()
	q := queue.NewMemoryQueue()
	svc := admin.NewService(admin.NewMemoryRepository(admin.DemoOrders()...))
	w := NewIntakeWorker(q, svc, time.Minute)

	require.NoError(t, q.Push(ctx, placed("ORD-001")))
	require.NoError(t, q.Push(ctx, placed("ORD-NEW000001")))

	n, err := w.processBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 0, q.Len(), "duplicates are not requeued")
}

func TestProcessBatch_FailedOrderIsRetried(t *testing.T) {
	ctx := context.Background()
	q := queue.NewMemoryQueue()
	ing := &failingIngester{failures: map[string]int{"ORD-PAID00001": 1}}
	w := NewIntakeWorker(q, ing, time.Minute)

	require.NoError(t, q.Push(ctx, placed("ORD-PAID00001")))
	require.NoError(t, q.Push(ctx, placed("ORD-PAID00002")))

	n, err := w.processBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, q.Len(), "failed order stays queued")

	n, err = w.processBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, []string{"ORD-PAID00001", "ORD-PAID00002", "ORD-PAID00001"}, ing.seen)
}

func TestProcessBatch_RetriedIntoRepository(t *testing.T) {
	ctx := context.Background()
	q := queue.NewMemoryQueue()
	svc := admin.NewService(admin.NewMemoryRepository())
	require.NoError(t, q.Push(ctx, placed("ORD-PAID00003")))

	_, err := NewIntakeWorker(q, &failingIngester{failures: map[string]int{"ORD-PAID00003": 1}}, time.Minute).processBatch(ctx)
	require.NoError(t, err)
	_, err = svc.Get(ctx, "ORD-PAID00003")
	require.ErrorIs(t, err, admin.ErrOrderNotFound)

	_, err = NewIntakeWorker(q, svc, time.Minute).processBatch(ctx)
	require.NoError(t, err)
	o, err := svc.Get(ctx, "ORD-PAID00003")
	require.NoError(t, err)
	assert.Equal(t, admin.StatusPending, o.Status)
}

func TestProcessBatch_QueueError(t *testing.T) {
	w := NewIntakeWorker(brokenQueue{}, &failingIngester{}, time.Minute)
	_, err := w.processBatch(context.Background())
	assert.ErrorContains(t, err, "pop placed orders")
}

func TestStart_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := queue.NewMemoryQueue()
	svc := admin.NewService(admin.NewMemoryRepository())
	require.NoError(t, q.Push(ctx, placed("ORD-TICK00001")))

	done := make(chan struct{})
	go func() {
		NewIntakeWorker(q, svc, 10*time.Millisecond).Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		_, err := svc.Get(context.Background(), "ORD-TICK00001")
		return err == nil
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
