package storage

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, namespace, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.entries[namespace][key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(_ context.Context, namespace, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.entries[namespace]
	if !ok {
		ns = make(map[string]string)
		s.entries[namespace] = ns
	}
	ns[key] = value
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, namespace, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.entries[namespace]
	if !ok {
		return nil
	}
	delete(ns, key)
	if len(ns) == 0 {
		delete(s.entries, namespace)
	}
	return nil
}
