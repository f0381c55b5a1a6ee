package service

import (
	"context"
	"sync"

	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
)

type kvStoreStub struct {
	mu        sync.Mutex
	values    map[string]string
	getErr    error
	setErr    error
	removeErr error
	sets      int
	// onGet runs once, after the value is read and outside the lock.
	onGet func()
}

func newKVStoreStub() *kvStoreStub {
	return &kvStoreStub{values: map[string]string{}}
}

func (s *kvStoreStub) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	if s.getErr != nil {
		s.mu.Unlock()
		return "", s.getErr
	}
	v, ok := s.values[key]
	hook := s.onGet
	s.onGet = nil
	s.mu.Unlock()
	if hook != nil {
		hook()
	}
	if !ok {
		return "", appErrors.Clone(appErrors.ErrKeyNotFound, key)
	}
	return v, nil
}

func (s *kvStoreStub) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.sets++
	s.values[key] = value
	return nil
}

func (s *kvStoreStub) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removeErr != nil {
		return s.removeErr
	}
	delete(s.values, key)
	return nil
}
