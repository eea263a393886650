// Package store provides the persistent key-value layer backing the
// board. Values are JSON documents kept under namespaced keys; reads of
// missing or corrupt entries fall back to a caller-supplied default so
// persistence problems never take the application down.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Persisted state layout. All application data lives under these keys.
const (
	KeyUsers   = "ttm:users"
	KeySession = "ttm:session"
	KeyTasks   = "ttm:tasks"
	KeyTheme   = "ttm:theme"
)

// Store is the raw byte-level key-value contract. Implementations hold
// the canonical serialized state; callers go through the typed helpers
// below rather than using Get/Set directly.
type Store interface {
	// Get returns the stored value and true, or (nil, false, nil) when
	// the key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Keys returns all stored keys, sorted.
	Keys(ctx context.Context) ([]string, error)

	Close() error
}

// Load reads and decodes the value under key. A missing key, a read
// error, or a value that no longer parses all yield fallback: stored
// state that cannot be decoded is treated as absent, not fatal.
func Load[T any](ctx context.Context, s Store, key string, fallback T) T {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		slog.Warn("store read failed, using fallback", "key", key, "error", err)
		return fallback
	}
	if !ok {
		return fallback
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.Warn("corrupt value in store, using fallback", "key", key, "error", err)
		return fallback
	}
	return v
}

// SaveValue encodes v as JSON and stores it under key.
func SaveValue[T any](ctx context.Context, s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode value for %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to store %s: %w", key, err)
	}
	return nil
}

// Patch applies a read-modify-write update to the value under key,
// seeding the updater with fallback when the key is absent or corrupt.
// It provides no isolation beyond single-goroutine call ordering; two
// processes patching the same key concurrently is an unguarded race.
func Patch[T any](ctx context.Context, s Store, key string, fallback T, updater func(T) T) error {
	current := Load(ctx, s, key, fallback)
	return SaveValue(ctx, s, key, updater(current))
}

// Has reports whether key currently holds a value.
func Has(ctx context.Context, s Store, key string) (bool, error) {
	_, ok, err := s.Get(ctx, key)
	return ok, err
}
