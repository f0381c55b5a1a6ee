package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Abdullah-819/786Times/internal/models"
	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
)

// PostgresKVRepository persists keys in the kv_entries table.
type PostgresKVRepository struct {
	db *sqlx.DB
}

// NewPostgresKVRepository constructs the repository.
func NewPostgresKVRepository(db *sqlx.DB) *PostgresKVRepository {
	return &PostgresKVRepository{db: db}
}

// Get fetches a single value by key.
func (r *PostgresKVRepository) Get(ctx context.Context, key string) (string, error) {
	const query = `SELECT key, value, updated_at FROM kv_entries WHERE key = $1`
	var entry models.KVEntry
	if err := r.db.GetContext(ctx, &entry, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", appErrors.ErrKeyNotFound
		}
		return "", appErrors.WrapAs(appErrors.ErrStorage, fmt.Errorf("get kv entry: %w", err), "")
	}
	return entry.Value, nil
}

// Set inserts or updates a value.
func (r *PostgresKVRepository) Set(ctx context.Context, key, value string) error {
	const query = `INSERT INTO kv_entries (key, value, updated_at)
VALUES (:key, :value, :updated_at)
ON CONFLICT (key)
DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	entry := models.KVEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return appErrors.WrapAs(appErrors.ErrStorage, fmt.Errorf("upsert kv entry: %w", err), "")
	}
	return nil
}

// Remove deletes a key.
func (r *PostgresKVRepository) Remove(ctx context.Context, key string) error {
	const query = `DELETE FROM kv_entries WHERE key = $1`
	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return appErrors.WrapAs(appErrors.ErrStorage, fmt.Errorf("delete kv entry: %w", err), "")
	}
	return nil
}

// Backend names the driver for metrics labels.
func (r *PostgresKVRepository) Backend() string { return "postgres" }
