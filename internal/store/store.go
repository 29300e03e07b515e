package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("record not found")

// Store keeps opaque records by key.
type Store interface {
	// Get returns ErrNotFound when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for absent keys.
	Delete(ctx context.Context, key string) error
}
