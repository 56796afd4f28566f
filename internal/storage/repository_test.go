package storage

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/coordinet/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteRepo(t *testing.T) Repository {
	t.Helper()
	db, err := Open(context.Background(), MemoryPath, time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db)
}

func newMemoryRepo(t *testing.T) Repository {
	t.Helper()
	return NewMemoryRepository()
}

var implementations = map[string]func(t *testing.T) Repository{
	"sqlite": newSQLiteRepo,
	"memory": newMemoryRepo,
}

func forEachRepo(t *testing.T, fn func(t *testing.T, r Repository)) {
	for name, mk := range implementations {
		t.Run(name, func(t *testing.T) {
			fn(t, mk(t))
		})
	}
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	forEachRepo(t, func(t *testing.T, r Repository) {
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, "k1", []byte(`[1,2]`)))

		v, err := r.Get(ctx, "k1")
		require.NoError(t, err)
		require.Equal(t, []byte(`[1,2]`), v)
	})
}

func TestGet_NotExists_ReturnsNilNil(t *testing.T) {
	forEachRepo(t, func(t *testing.T, r Repository) {
		v, err := r.Get(context.Background(), "absent")
		require.NoError(t, err)
		require.Nil(t, v)

		v, ver, err := r.GetVersioned(context.Background(), "absent")
		require.NoError(t, err)
		require.Nil(t, v)
		require.Zero(t, ver)
	})
}

func TestSet_UpsertOverwritesAndBumpsVersion(t *testing.T) {
	forEachRepo(t, func(t *testing.T, r Repository) {
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, "k", []byte("old")))
		_, v1, err := r.GetVersioned(ctx, "k")
		require.NoError(t, err)

		require.NoError(t, r.Set(ctx, "k", []byte("new")))
		got, v2, err := r.GetVersioned(ctx, "k")
		require.NoError(t, err)

		require.Equal(t, []byte("new"), got)
		require.Greater(t, v2, v1)
	})
}

func TestCompareAndSet_CreatesAbsentKeyAtVersionZero(t *testing.T) {
	forEachRepo(t, func(t *testing.T, r Repository) {
		ctx := context.Background()

		require.NoError(t, r.CompareAndSet(ctx, "k", []byte("a"), 0))

		got, ver, err := r.GetVersioned(ctx, "k")
		require.NoError(t, err)
		require.Equal(t, []byte("a"), got)
		require.Equal(t, int64(1), ver)

		err = r.CompareAndSet(ctx, "k", []byte("b"), 0)
		require.ErrorIs(t, err, common.ErrVersionConflict)
	})
}

func TestCompareAndSet_StaleVersionConflicts(t *testing.T) {
	forEachRepo(t, func(t *testing.T, r Repository) {
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, "k", []byte("v1")))
		_, ver, err := r.GetVersioned(ctx, "k")
		require.NoError(t, err)

		// another writer gets in first
		require.NoError(t, r.CompareAndSet(ctx, "k", []byte("other"), ver))

		err = r.CompareAndSet(ctx, "k", []byte("mine"), ver)
		require.ErrorIs(t, err, common.ErrVersionConflict)

		got, err := r.Get(ctx, "k")
		require.NoError(t, err)
		require.Equal(t, []byte("other"), got)
	})
}

func TestList_ReturnsAllPairs(t *testing.T) {
	forEachRepo(t, func(t *testing.T, r Repository) {
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, "a", []byte{0xAA}))
		require.NoError(t, r.Set(ctx, "b", []byte{0xBB, 0xCC}))

		m, err := r.List(ctx)
		require.NoError(t, err)
		assert.Len(t, m, 2)
		assert.Equal(t, []byte{0xAA}, m["a"])
		assert.Equal(t, []byte{0xBB, 0xCC}, m["b"])
	})
}

func TestDelete_RemovesKey_AndIsIdempotent(t *testing.T) {
	forEachRepo(t, func(t *testing.T, r Repository) {
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, "x", []byte{0x01}))
		require.NoError(t, r.Delete(ctx, "x"))

		v, err := r.Get(ctx, "x")
		require.NoError(t, err)
		require.Nil(t, v)

		require.NoError(t, r.Delete(ctx, "x"))
	})
}

func TestBatch_SetsAndDeletesTogether(t *testing.T) {
	forEachRepo(t, func(t *testing.T, r Repository) {
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, "keep", []byte("old")))
		require.NoError(t, r.Set(ctx, "drop", []byte("gone")))
		require.NoError(t, r.Set(ctx, "other", []byte("untouched")))
		_, before, err := r.GetVersioned(ctx, "keep")
		require.NoError(t, err)

		require.NoError(t, r.Batch(ctx, map[string][]byte{
			"keep":  []byte("new"),
			"fresh": []byte("f"),
		}, []string{"drop", "never-existed"}))

		m, err := r.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string][]byte{
			"keep":  []byte("new"),
			"fresh": []byte("f"),
			"other": []byte("untouched"),
		}, m)

		_, after, err := r.GetVersioned(ctx, "keep")
		require.NoError(t, err)
		assert.Greater(t, after, before)
	})
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, r.Set(ctx, "k", in))
	in[0] = 'X'

	out, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), out)

	out[1] = 'Y'
	again, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), again)
}
