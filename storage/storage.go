// Package storage holds the durable key/value entries a client keeps across
// reloads. Every entry belongs to a namespace, one per client.
package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: key not found")

type Store interface {
	// Get returns ErrNotFound when the key is absent.
	Get(ctx context.Context, namespace, key string) (string, error)
	Set(ctx context.Context, namespace, key, value string) error
	// Remove is a no-op for absent keys.
	Remove(ctx context.Context, namespace, key string) error
}

// Bucket binds a Store to one namespace.
type Bucket struct {
	store     Store
	namespace string
}

func NewBucket(store Store, namespace string) *Bucket {
	return &Bucket{store: store, namespace: namespace}
}

func (b *Bucket) Get(ctx context.Context, key string) (string, error) {
	return b.store.Get(ctx, b.namespace, key)
}

func (b *Bucket) Set(ctx context.Context, key, value string) error {
	return b.store.Set(ctx, b.namespace, key, value)
}

func (b *Bucket) Remove(ctx context.Context, key string) error {
	return b.store.Remove(ctx, b.namespace, key)
}
