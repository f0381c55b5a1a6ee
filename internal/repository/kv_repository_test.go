package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
	"github.com/Abdullah-819/786Times/pkg/storage"
)

func exerciseBackend(t *testing.T, repo KVBackend) {
	t.Helper()
	ctx := context.Background()

	_, err := repo.Get(ctx, "@selected_section")
	assert.ErrorIs(t, err, appErrors.ErrKeyNotFound)

	require.NoError(t, repo.Set(ctx, "@selected_section", "FA24-BCS-4-E"))
	value, err := repo.Get(ctx, "@selected_section")
	require.NoError(t, err)
	assert.Equal(t, "FA24-BCS-4-E", value)

	require.NoError(t, repo.Set(ctx, "@selected_section", "SP25-BSE-3-B"))
	value, err = repo.Get(ctx, "@selected_section")
	require.NoError(t, err)
	assert.Equal(t, "SP25-BSE-3-B", value)

	require.NoError(t, repo.Remove(ctx, "@selected_section"))
	require.NoError(t, repo.Remove(ctx, "@selected_section"))
	_, err = repo.Get(ctx, "@selected_section")
	assert.ErrorIs(t, err, appErrors.ErrKeyNotFound)
}

func TestMemoryKVRepository(t *testing.T) {
	exerciseBackend(t, NewMemoryKVRepository())
}

func TestMemoryKVRepositoryHonoursCancelledContext(t *testing.T) {
	repo := NewMemoryKVRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := repo.Set(ctx, "k", "v")
	assert.ErrorIs(t, err, appErrors.ErrStorage)
}

func TestFileKVRepository(t *testing.T) {
	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	exerciseBackend(t, NewFileKVRepository(files, "store.json", nil))
}

func TestFileKVRepositoryPersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	files, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	first := NewFileKVRepository(files, "store.json", nil)
	require.NoError(t, first.Set(context.Background(), "@intro_index", "2"))

	second := NewFileKVRepository(files, "store.json", nil)
	value, err := second.Get(context.Background(), "@intro_index")
	require.NoError(t, err)
	assert.Equal(t, "2", value)
}

func TestFileKVRepositoryCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "store.json"), []byte("{not json"), 0o644))
	files, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	_, err = NewFileKVRepository(files, "store.json", nil).Get(context.Background(), "k")
	assert.ErrorIs(t, err, appErrors.ErrStorage)
}

type redisStub struct {
	values map[string]string
	err    error
	keys   []string
}

func newRedisStub() *redisStub { return &redisStub{values: map[string]string{}} }

func (r *redisStub) Get(ctx context.Context, key string) *redis.StringCmd {
	r.keys = append(r.keys, key)
	cmd := redis.NewStringCmd(ctx, "get", key)
	value, ok := r.values[key]
	switch {
	case r.err != nil:
		cmd.SetErr(r.err)
	case !ok:
		cmd.SetErr(redis.Nil)
	default:
		cmd.SetVal(value)
	}
	return cmd
}

func (r *redisStub) Set(ctx context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	r.keys = append(r.keys, key)
	cmd := redis.NewStatusCmd(ctx, "set", key, value)
	if r.err != nil {
		cmd.SetErr(r.err)
		return cmd
	}
	r.values[key] = value.(string)
	cmd.SetVal("OK")
	return cmd
}

func (r *redisStub) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx, "del")
	if r.err != nil {
		cmd.SetErr(r.err)
		return cmd
	}
	var removed int64
	for _, key := range keys {
		r.keys = append(r.keys, key)
		if _, ok := r.values[key]; ok {
			delete(r.values, key)
			removed++
		}
	}
	cmd.SetVal(removed)
	return cmd
}

func TestRedisKVRepository(t *testing.T) {
	exerciseBackend(t, NewRedisKVRepository(newRedisStub(), "786times:"))
}

func TestRedisKVRepositoryPrefixesKeys(t *testing.T) {
	client := newRedisStub()
	repo := NewRedisKVRepository(client, "786times:")
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "@intro_index", "3"))
	assert.Equal(t, "3", client.values["786times:@intro_index"])
	_, _ = repo.Get(ctx, "@intro_index")
	require.NoError(t, repo.Remove(ctx, "@intro_index"))
	assert.Equal(t, []string{"786times:@intro_index", "786times:@intro_index", "786times:@intro_index"}, client.keys)
	assert.Empty(t, client.values)
	assert.Equal(t, "redis", repo.Backend())
}

func TestRedisKVRepositoryWrapsFailures(t *testing.T) {
	client := newRedisStub()
	client.err = errors.New("connection refused")
	repo := NewRedisKVRepository(client, "786times:")
	ctx := context.Background()

	_, err := repo.Get(ctx, "k")
	assert.ErrorIs(t, err, appErrors.ErrStorage)
	assert.NotErrorIs(t, err, appErrors.ErrKeyNotFound)
	assert.ErrorIs(t, repo.Set(ctx, "k", "v"), appErrors.ErrStorage)
	assert.ErrorIs(t, repo.Remove(ctx, "k"), appErrors.ErrStorage)
}

type observerStub struct {
	calls []string
}

func (o *observerStub) ObserveStorageOp(backend, op string, duration time.Duration, outcome string) {
	o.calls = append(o.calls, backend+":"+op+":"+outcome)
}

func TestMeteredKVRepository(t *testing.T) {
	obs := &observerStub{}
	repo := NewMeteredKVRepository(NewMemoryKVRepository(), obs)
	ctx := context.Background()

	_, _ = repo.Get(ctx, "missing")
	_ = repo.Set(ctx, "k", "v")
	_, _ = repo.Get(ctx, "k")
	_ = repo.Remove(ctx, "k")

	assert.Equal(t, []string{"memory:get:miss", "memory:set:ok", "memory:get:ok", "memory:remove:ok"}, obs.calls)
	assert.Equal(t, "memory", repo.Backend())
}

func TestMeteredKVRepositoryNilObserver(t *testing.T) {
	inner := NewMemoryKVRepository()
	assert.Same(t, inner, NewMeteredKVRepository(inner, nil))
}
