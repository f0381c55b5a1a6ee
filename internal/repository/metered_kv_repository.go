package repository

import (
	"context"
	"errors"
	"time"

	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
)

// KVBackend is the contract every key-value repository satisfies.
type KVBackend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Backend() string
}

// StorageObserver receives timing for each storage call.
type StorageObserver interface {
	ObserveStorageOp(backend, op string, duration time.Duration, outcome string)
}

// MeteredKVRepository decorates a backend with timing and outcome metrics.
type MeteredKVRepository struct {
	next     KVBackend
	observer StorageObserver
}

// NewMeteredKVRepository wraps next. A nil observer returns next unchanged.
func NewMeteredKVRepository(next KVBackend, observer StorageObserver) KVBackend {
	if observer == nil {
		return next
	}
	return &MeteredKVRepository{next: next, observer: observer}
}

func (r *MeteredKVRepository) Get(ctx context.Context, key string) (string, error) {
	start := time.Now()
	value, err := r.next.Get(ctx, key)
	r.observer.ObserveStorageOp(r.next.Backend(), "get", time.Since(start), outcome(err))
	return value, err
}

func (r *MeteredKVRepository) Set(ctx context.Context, key, value string) error {
	start := time.Now()
	err := r.next.Set(ctx, key, value)
	r.observer.ObserveStorageOp(r.next.Backend(), "set", time.Since(start), outcome(err))
	return err
}

func (r *MeteredKVRepository) Remove(ctx context.Context, key string) error {
	start := time.Now()
	err := r.next.Remove(ctx, key)
	r.observer.ObserveStorageOp(r.next.Backend(), "remove", time.Since(start), outcome(err))
	return err
}

func (r *MeteredKVRepository) Backend() string { return r.next.Backend() }

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, appErrors.ErrKeyNotFound):
		return "miss"
	default:
		return "error"
	}
}
