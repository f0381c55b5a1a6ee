package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
)

// RedisCommander is the subset of redis.Cmdable the repository issues.
type RedisCommander interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisKVRepository stores keys in Redis under a namespace prefix.
type RedisKVRepository struct {
	client RedisCommander
	prefix string
}

// NewRedisKVRepository constructs a Redis-backed store. The caller owns the
// client's lifecycle.
func NewRedisKVRepository(client RedisCommander, prefix string) *RedisKVRepository {
	return &RedisKVRepository{client: client, prefix: prefix}
}

// Get returns the value stored under key.
func (r *RedisKVRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", appErrors.ErrKeyNotFound
		}
		return "", appErrors.WrapAs(appErrors.ErrStorage, fmt.Errorf("redis get %s: %w", key, err), "")
	}
	return value, nil
}

// Set stores value under key without expiry.
func (r *RedisKVRepository) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return appErrors.WrapAs(appErrors.ErrStorage, fmt.Errorf("redis set %s: %w", key, err), "")
	}
	return nil
}

// Remove deletes key.
func (r *RedisKVRepository) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return appErrors.WrapAs(appErrors.ErrStorage, fmt.Errorf("redis delete %s: %w", key, err), "")
	}
	return nil
}

// Backend names the driver for metrics labels.
func (r *RedisKVRepository) Backend() string { return "redis" }
