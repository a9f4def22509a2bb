package store

import (
	"context"
	"strings"
)

// ScopedStore wraps a Store with a name prefix for multi-profile isolation.
// This lets several users or workspaces share one backend without seeing
// each other's layouts.
//
// Example usage:
//
//	// Per-user layouts on a shared Redis instance
//	userStore := NewScopedStore(redisStore, "user:abc123:")
type ScopedStore struct {
	inner  Store
	prefix string
}

// NewScopedStore creates a store that prepends prefix to every name.
func NewScopedStore(inner Store, prefix string) *ScopedStore {
	return &ScopedStore{inner: inner, prefix: prefix}
}

// Get retrieves the layout stored under the prefixed name.
func (s *ScopedStore) Get(ctx context.Context, name string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+name)
}

// Set stores a layout under the prefixed name.
func (s *ScopedStore) Set(ctx context.Context, name string, data []byte) error {
	return s.inner.Set(ctx, s.prefix+name, data)
}

// Delete removes the layout stored under the prefixed name.
func (s *ScopedStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, s.prefix+name)
}

// List returns the names inside this scope, with the prefix stripped.
func (s *ScopedStore) List(ctx context.Context) ([]string, error) {
	all, err := s.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, name := range all {
		if strings.HasPrefix(name, s.prefix) {
			names = append(names, strings.TrimPrefix(name, s.prefix))
		}
	}
	return names, nil
}

// Close closes the underlying store.
func (s *ScopedStore) Close() error {
	return s.inner.Close()
}

// Ensure ScopedStore implements Store.
var _ Store = (*ScopedStore)(nil)
