package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
	"github.com/Abdullah-819/786Times/pkg/storage"
)

// FileKVRepository persists all keys in one JSON object on disk, the server
// equivalent of on-device async storage.
type FileKVRepository struct {
	mu       sync.Mutex
	files    *storage.LocalStorage
	filename string
	logger   *zap.Logger
}

// NewFileKVRepository constructs a file-backed store writing to filename
// inside files.
func NewFileKVRepository(files *storage.LocalStorage, filename string, logger *zap.Logger) *FileKVRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileKVRepository{files: files, filename: filename, logger: logger}
}

// Get returns the value stored under key.
func (r *FileKVRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	values, err := r.load(ctx)
	if err != nil {
		return "", err
	}
	value, ok := values[key]
	if !ok {
		return "", appErrors.ErrKeyNotFound
	}
	return value, nil
}

// Set stores value under key and rewrites the file.
func (r *FileKVRepository) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	values, err := r.load(ctx)
	if err != nil {
		return err
	}
	values[key] = value
	return r.flush(values)
}

// Remove deletes key and rewrites the file.
func (r *FileKVRepository) Remove(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	values, err := r.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return r.flush(values)
}

// Backend names the driver for metrics labels.
func (r *FileKVRepository) Backend() string { return "file" }

func (r *FileKVRepository) load(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, appErrors.WrapAs(appErrors.ErrStorage, err, "")
	}
	raw, err := r.files.Read(r.filename)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, appErrors.WrapAs(appErrors.ErrStorage, err, "failed to read store file")
	}
	values := map[string]string{}
	if len(raw) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, appErrors.WrapAs(appErrors.ErrStorage, fmt.Errorf("decode %s: %w", r.filename, err), "store file is corrupt")
	}
	return values, nil
}

func (r *FileKVRepository) flush(values map[string]string) error {
	payload, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return appErrors.WrapAs(appErrors.ErrStorage, err, "failed to encode store file")
	}
	if err := r.files.Save(r.filename, payload); err != nil {
		r.logger.Warn("store file write failed", zap.String("file", r.files.Path(r.filename)), zap.Error(err))
		return appErrors.WrapAs(appErrors.ErrStorage, err, "failed to write store file")
	}
	return nil
}
