package repository

import (
	"context"
	"sync"

	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
)

// MemoryKVRepository keeps values in process memory. It backs tests and the
// "memory" storage driver.
type MemoryKVRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKVRepository constructs an empty in-memory store.
func NewMemoryKVRepository() *MemoryKVRepository {
	return &MemoryKVRepository{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (r *MemoryKVRepository) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", appErrors.WrapAs(appErrors.ErrStorage, err, "")
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.values[key]
	if !ok {
		return "", appErrors.ErrKeyNotFound
	}
	return value, nil
}

// Set stores value under key.
func (r *MemoryKVRepository) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return appErrors.WrapAs(appErrors.ErrStorage, err, "")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}

// Remove deletes key; removing an absent key is not an error.
func (r *MemoryKVRepository) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return appErrors.WrapAs(appErrors.ErrStorage, err, "")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}

// Backend names the driver for metrics labels.
func (r *MemoryKVRepository) Backend() string { return "memory" }
