// Package kv provides the key-value stores backing the record repository.
//
// Two implementations exist: a SQLite-backed store for the real app and an
// in-memory store for tests and the memory data backend. Both expose raw
// bytes; JSON (de)serialization belongs to the repository layer.
package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get for keys that were never set.
var ErrKeyNotFound = errors.New("key not found")

// Store is the minimal persistence contract. Set fully replaces the value
// at a key, never merges. Read and write failures surface as errors so
// callers choose how to degrade.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error

	// Update applies fn to the current value at key (nil when absent) and
	// writes the result back in one atomic step. Implementations must
	// serialize Updates on the same key against every other writer of the
	// underlying storage, including ones in other processes, so a
	// read-modify-write can never lose a concurrent write. fn errors abort
	// the update without writing.
	Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error

	// RemoveAll deletes the given keys best-effort: it keeps going after
	// individual failures and returns the first error encountered.
	RemoveAll(ctx context.Context, keys []string) error
}
