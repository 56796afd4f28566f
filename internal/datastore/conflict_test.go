package datastore

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/coordinet/internal/common"
	"github.com/dmitrijs2005/coordinet/internal/models"
	"github.com/dmitrijs2005/coordinet/internal/storage"
	"github.com/stretchr/testify/require"
)

// racingRepo runs interfere once, right after the first versioned read, to
// simulate another process writing between our read and our write.
type racingRepo struct {
	storage.Repository
	once      sync.Once
	interfere func()
	reads     int
}

func (r *racingRepo) GetVersioned(ctx context.Context, key string) ([]byte, int64, error) {
	v, ver, err := r.Repository.GetVersioned(ctx, key)
	r.reads++
	r.once.Do(r.interfere)
	return v, ver, err
}

// conflictingRepo always loses the compare-and-set.
type conflictingRepo struct {
	storage.Repository
	attempts int
}

func (r *conflictingRepo) CompareAndSet(_ context.Context, key string, _ []byte, version int64) error {
	r.attempts++
	return fmt.Errorf("kv[%s] at version %d: %w", key, version, common.ErrVersionConflict)
}

func TestMutate_RetriesAndRechecksUniqueness(t *testing.T) {
	ctx := context.Background()
	shared := storage.NewMemoryRepository()
	other := New(shared)

	repo := &racingRepo{Repository: shared}
	repo.interfere = func() {
		_, err := other.CreateUser(ctx, models.NewUser{
			Email: "a@example.com", Password: "x", Name: "Other tab", Role: models.RoleStudent,
		})
		require.NoError(t, err)
	}
	s := New(repo, WithConflictRetries(3, time.Millisecond))

	_, err := s.CreateUser(ctx, models.NewUser{
		Email: "a@example.com", Password: "y", Name: "This tab", Role: models.RoleStudent,
	})
	require.ErrorIs(t, err, common.ErrDuplicateKey)
	require.Equal(t, 2, repo.reads)

	all, err := other.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "Other tab", all[0].Name)
}

func TestMutate_RetryKeepsBothWrites(t *testing.T) {
	ctx := context.Background()
	shared := storage.NewMemoryRepository()
	other := New(shared)

	repo := &racingRepo{Repository: shared}
	repo.interfere = func() {
		_, err := other.CreateClub(ctx, models.NewClub{Name: "Other", LeaderID: "l2"})
		require.NoError(t, err)
	}
	s := New(repo, WithConflictRetries(3, time.Millisecond))

	_, err := s.CreateClub(ctx, models.NewClub{Name: "Mine", LeaderID: "l1"})
	require.NoError(t, err)

	all, err := other.GetAllClubs(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "Other", all[0].Name)
	require.Equal(t, "Mine", all[1].Name)
}

func TestMutate_ExhaustedRetries(t *testing.T) {
	repo := &conflictingRepo{Repository: storage.NewMemoryRepository()}
	s := New(repo, WithConflictRetries(2, time.Millisecond))

	_, err := s.CreateClub(context.Background(), models.NewClub{Name: "Mine", LeaderID: "l1"})
	require.ErrorIs(t, err, common.ErrVersionConflict)
	require.Equal(t, 3, repo.attempts)
}

func TestMutate_ContextCancelledDuringBackoff(t *testing.T) {
	repo := &conflictingRepo{Repository: storage.NewMemoryRepository()}
	s := New(repo, WithConflictRetries(100, time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := s.CreateClub(ctx, models.NewClub{Name: "Mine", LeaderID: "l1"})
	require.Error(t, err)
	require.Equal(t, 1, repo.attempts)
}

func TestMutate_NonConflictErrorIsNotRetried(t *testing.T) {
	repo := &racingRepo{Repository: storage.NewMemoryRepository(), interfere: func() {}}
	s, _ := newTestStore(t)
	s.repo = repo

	_, err := s.UpdateTask(context.Background(), "missing", models.TaskPatch{})
	require.ErrorIs(t, err, common.ErrNotFound)
	require.Equal(t, 1, repo.reads)
}
