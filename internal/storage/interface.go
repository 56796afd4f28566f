package storage

import (
	"context"
)

// Repository is a versioned key-value store.
//
// Absent keys are not errors: Get returns (nil, nil) and GetVersioned
// returns version 0.
type Repository interface {
	// Get returns the value stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// GetVersioned returns the value and its current version.
	GetVersioned(ctx context.Context, key string) ([]byte, int64, error)

	// Set writes value unconditionally.
	Set(ctx context.Context, key string, value []byte) error

	// CompareAndSet writes value only if the key is still at version.
	// Version 0 means the key must not exist yet. A mismatch returns
	// common.ErrVersionConflict.
	CompareAndSet(ctx context.Context, key string, value []byte, version int64) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every key and value as of one point in time.
	List(ctx context.Context) (map[string][]byte, error)

	// Batch atomically writes every key in set and removes every key in
	// del. Written keys get a new version as with Set.
	Batch(ctx context.Context, set map[string][]byte, del []string) error
}
