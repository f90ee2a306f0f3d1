package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"
)

// FileStore keeps all namespaces in a single JSON document, rewritten
// atomically on every change.
type FileStore struct {
	path string

	mu      sync.RWMutex
	entries map[string]map[string]string
}

// NewFileStore loads path if it exists. A relative path is resolved against
// the user's home directory.
func NewFileStore(path string) (*FileStore, error) {
	if !filepath.IsAbs(path) {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, path)
	}

	s := &FileStore{
		path:    path,
		entries: make(map[string]map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(_ context.Context, namespace, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.entries[namespace][key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *FileStore) Set(_ context.Context, namespace, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.entries[namespace]
	if !ok {
		ns = make(map[string]string)
		s.entries[namespace] = ns
	}
	prev, existed := ns[key]
	ns[key] = value

	if err := s.flush(); err != nil {
		if existed {
			ns[key] = prev
		} else {
			delete(ns, key)
		}
		return err
	}
	return nil
}

func (s *FileStore) Remove(_ context.Context, namespace, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.entries[namespace]
	if !ok {
		return nil
	}
	if _, ok := ns[key]; !ok {
		return nil
	}
	delete(ns, key)
	if len(ns) == 0 {
		delete(s.entries, namespace)
	}
	return s.flush()
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, &s.entries)
}

// flush must be called with mu held.
func (s *FileStore) flush() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return err
	}

	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return err
	}
	return os.Chmod(s.path, 0600)
}
