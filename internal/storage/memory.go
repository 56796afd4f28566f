package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/coordinet/internal/common"
)

type memoryEntry struct {
	value   []byte
	version int64
}

// MemoryRepository is an in-process Repository. Values are copied on the
// way in and out. It is safe for concurrent use.
type MemoryRepository struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]memoryEntry)}
}

func (r *MemoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	v, _, err := r.GetVersioned(ctx, key)
	return v, err
}

func (r *MemoryRepository) GetVersioned(_ context.Context, key string) ([]byte, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[key]
	if !ok {
		return nil, 0, nil
	}
	return clone(e.value), e.version, nil
}

func (r *MemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entries[key]
	r.entries[key] = memoryEntry{value: clone(value), version: e.version + 1}
	return nil
}

func (r *MemoryRepository) CompareAndSet(_ context.Context, key string, value []byte, version int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entries[key]
	if e.version != version {
		return fmt.Errorf("kv[%s] at version %d: %w", key, version, common.ErrVersionConflict)
	}
	r.entries[key] = memoryEntry{value: clone(value), version: version + 1}
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, key)
	return nil
}

func (r *MemoryRepository) List(_ context.Context) (map[string][]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make(map[string][]byte, len(r.entries))
	for k, e := range r.entries {
		result[k] = clone(e.value)
	}
	return result, nil
}

func (r *MemoryRepository) Batch(_ context.Context, set map[string][]byte, del []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, k := range del {
		delete(r.entries, k)
	}
	for k, v := range set {
		r.entries[k] = memoryEntry{value: clone(v), version: r.entries[k].version + 1}
	}
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
