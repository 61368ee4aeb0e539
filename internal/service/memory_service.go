package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	app_errors "savant-seeker/backend/internal/errors"
	"savant-seeker/backend/internal/persistence"
)

// MemoryService manages the facts injected into every request's instruction.
type MemoryService struct {
	mu       sync.RWMutex
	memories []string
	adapter  *persistence.Adapter
}

func NewMemoryService(adapter *persistence.Adapter) *MemoryService {
	return &MemoryService{adapter: adapter, memories: []string{}}
}

// List returns the memories, newest first.
func (s *MemoryService) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.memories)
}

// Add prepends a trimmed fact. Blank facts are ignored.
func (s *MemoryService) Add(ctx context.Context, fact string) []string {
	fact = strings.TrimSpace(fact)

	s.mu.Lock()
	defer s.mu.Unlock()
	if fact == "" {
		return slices.Clone(s.memories)
	}
	s.memories = append([]string{fact}, s.memories...)
	s.adapter.SaveMemories(ctx, s.memories)
	return slices.Clone(s.memories)
}

// Delete removes the memory at index.
func (s *MemoryService) Delete(ctx context.Context, index int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.memories) {
		return nil, fmt.Errorf("%w: memory %d", app_errors.ErrNotFound, index)
	}
	s.memories = slices.Delete(s.memories, index, index+1)
	s.adapter.SaveMemories(ctx, s.memories)
	return slices.Clone(s.memories), nil
}

// Replace swaps the whole list.
func (s *MemoryService) Replace(ctx context.Context, memories []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memories = cleanMemories(memories)
	s.adapter.SaveMemories(ctx, s.memories)
	return slices.Clone(s.memories)
}

// restore loads memories without writing them back.
func (s *MemoryService) restore(memories []string) {
	s.mu.Lock()
	s.memories = cleanMemories(memories)
	s.mu.Unlock()
}

func cleanMemories(memories []string) []string {
	out := make([]string, 0, len(memories))
	for _, m := range memories {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}
