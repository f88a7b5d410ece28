package infrastructure

import (
	"context"
	"sync"

	"fashion-advisor/backend/internal/features/settings/domain"
)

type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryStore creates a Store that lives for the process lifetime only.
func NewMemoryStore() Store {
	return &memoryStore{entries: make(map[string]string)}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return value, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}
