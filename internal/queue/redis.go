package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"xutix/internal/model"
)

const DefaultKey = "xutix:orders:placed"

// RedisQueue keeps orders as JSON in a Redis list.
type RedisQueue struct {
	client *redis.Client
	key    string
}

func NewRedisQueue(client *redis.Client, key string) *RedisQueue {
	if key == "" {
		key = DefaultKey
	}
	return &RedisQueue{client: client, key: key}
}

func (q *RedisQueue) Push(ctx context.Context, order model.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order failed: %w", err)
	}
	if err := q.client.RPush(ctx, q.key, data).Err(); err != nil {
		return fmt.Errorf("redis rpush failed: %w", err)
	}
	return nil
}

// Pop drops entries that cannot be decoded; they are logged and never
// returned.
func (q *RedisQueue) Pop(ctx context.Context, n int) ([]model.Order, error) {
	if n <= 0 {
		return []model.Order{}, nil
	}

	raw, err := q.client.LPopCount(ctx, q.key, n).Result()
	if errors.Is(err, redis.Nil) {
		return []model.Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis lpop failed: %w", err)
	}

	orders := make([]model.Order, 0, len(raw))
	for _, r := range raw {
		var o model.Order
		if err := json.Unmarshal([]byte(r), &o); err != nil {
			slog.Error("dropping malformed queued order", "error", err)
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}
