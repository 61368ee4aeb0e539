package repository

import (
	"context"
	"slices"
	"strings"
	"sync"
)

type memoryRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryRepository returns a process-local repository. Nothing survives a restart.
func NewMemoryRepository() Repository {
	return &memoryRepository{data: make(map[string][]byte)}
}

func (r *memoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(value), nil
}

func (r *memoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = slices.Clone(value)
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range keys {
		delete(r.data, key)
	}
	return nil
}

func (r *memoryRepository) Keys(_ context.Context, prefix string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var keys []string
	for key := range r.data {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys, nil
}
