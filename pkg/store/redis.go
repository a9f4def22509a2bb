package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/dockyard/pkg/observability"
)

// RedisStore persists layouts in Redis, for hosted deployments where layout
// state is shared across instances.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a store backed by the Redis instance at url
// (redis://host:port/db). Keys are stored under the "layout:" prefix.
func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &RedisStore{
		client: redis.NewClient(opts),
		prefix: "layout:",
	}, nil
}

// Get retrieves the layout stored under name.
func (s *RedisStore) Get(ctx context.Context, name string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.prefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		observability.Store().OnStoreMiss(ctx, "redis")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	observability.Store().OnStoreHit(ctx, "redis")
	return data, true, nil
}

// Set stores a layout under name. Transient failures are retried with
// backoff.
func (s *RedisStore) Set(ctx context.Context, name string, data []byte) error {
	err := RetryWithBackoff(ctx, func() error {
		if err := s.client.Set(ctx, s.prefix+name, data, 0).Err(); err != nil {
			return Retryable(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	observability.Store().OnStoreSet(ctx, "redis", len(data))
	return nil
}

// Delete removes the layout stored under name.
func (s *RedisStore) Delete(ctx context.Context, name string) error {
	if err := s.client.Del(ctx, s.prefix+name).Err(); err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	return nil
}

// List returns the names of all stored layouts.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var names []string
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), s.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	return names, nil
}

// Close releases the client connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
