package datastore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/coordinet/internal/common"
	"github.com/sethvargo/go-retry"
)

// errUnchanged aborts a mutation without writing anything.
var errUnchanged = errors.New("unchanged")

// collection describes one persisted array of records.
type collection[T any] struct {
	name   string
	entity string
	id     func(*T) string
}

func (c collection[T]) load(ctx context.Context, s *Store) ([]T, int64, error) {
	raw, version, err := s.repo.GetVersioned(ctx, s.key(c.name))
	if err != nil {
		return nil, 0, err
	}

	items, err := c.decode(raw)
	if err != nil {
		return nil, 0, err
	}
	return items, version, nil
}

// decode turns a stored array into records; an absent value is an empty
// collection.
func (c collection[T]) decode(raw []byte) ([]T, error) {
	items := []T{}
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.name, err)
	}
	return items, nil
}

func (c collection[T]) all(ctx context.Context, s *Store) ([]T, error) {
	items, _, err := c.load(ctx, s)
	return items, err
}

func (c collection[T]) byID(ctx context.Context, s *Store, id string) (*T, error) {
	return c.find(ctx, s, func(item *T) bool { return c.id(item) == id })
}

func (c collection[T]) find(ctx context.Context, s *Store, match func(*T) bool) (*T, error) {
	items, err := c.all(ctx, s)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if match(&items[i]) {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (c collection[T]) filter(ctx context.Context, s *Store, match func(*T) bool) ([]T, error) {
	items, err := c.all(ctx, s)
	if err != nil {
		return nil, err
	}
	result := []T{}
	for i := range items {
		if match(&items[i]) {
			result = append(result, items[i])
		}
	}
	return result, nil
}

// mutate loads the collection, lets fn compute the new content and writes
// it back if nobody else wrote in between. fn may run more than once.
func (c collection[T]) mutate(ctx context.Context, s *Store, fn func(items []T) ([]T, error)) error {
	backoff := retry.WithMaxRetries(s.retries, retry.NewConstant(s.backoff))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		items, version, err := c.load(ctx, s)
		if err != nil {
			return err
		}

		next, err := fn(items)
		if err != nil {
			return err
		}

		raw, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("encode %s: %w", c.name, err)
		}

		err = s.repo.CompareAndSet(ctx, s.key(c.name), raw, version)
		if errors.Is(err, common.ErrVersionConflict) {
			s.log.Warn(ctx, "concurrent write, retrying", "collection", c.name, "version", version)
			return retry.RetryableError(err)
		}
		return err
	})
	if errors.Is(err, errUnchanged) {
		return nil
	}
	return err
}

// insert appends the record built by mk after check accepts the current
// content. mk runs once per attempt so identifiers and timestamps are fresh.
func (c collection[T]) insert(ctx context.Context, s *Store, check func(items []T) error, mk func() T) (*T, error) {
	var created T
	err := c.mutate(ctx, s, func(items []T) ([]T, error) {
		if check != nil {
			if err := check(items); err != nil {
				return nil, err
			}
		}
		created = mk()
		return append(items, created), nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug(ctx, c.entity+" created", "id", c.id(&created))
	return &created, nil
}

// update applies fn to the record with the given id. check sees the whole
// collection and the patched record before anything is written.
func (c collection[T]) update(ctx context.Context, s *Store, id string, fn func(item *T), check func(items []T, updated *T) error) (*T, error) {
	var updated T
	err := c.mutate(ctx, s, func(items []T) ([]T, error) {
		for i := range items {
			if c.id(&items[i]) != id {
				continue
			}
			candidate := items[i]
			fn(&candidate)
			if check != nil {
				if err := check(items, &candidate); err != nil {
					return nil, err
				}
			}
			items[i] = candidate
			updated = candidate
			return items, nil
		}
		return nil, fmt.Errorf("%s %q: %w", c.entity, id, common.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug(ctx, c.entity+" updated", "id", id)
	return &updated, nil
}

// remove drops the record with the given id. Missing ids are a no-op.
func (c collection[T]) remove(ctx context.Context, s *Store, id string) error {
	err := c.mutate(ctx, s, func(items []T) ([]T, error) {
		kept := make([]T, 0, len(items))
		for i := range items {
			if c.id(&items[i]) != id {
				kept = append(kept, items[i])
			}
		}
		if len(kept) == len(items) {
			return nil, errUnchanged
		}
		return kept, nil
	})
	if err != nil {
		return err
	}

	s.log.Debug(ctx, c.entity+" deleted", "id", id)
	return nil
}
