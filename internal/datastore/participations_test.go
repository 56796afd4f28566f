package datastore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/coordinet/internal/common"
	"github.com/dmitrijs2005/coordinet/internal/models"
	"github.com/dmitrijs2005/coordinet/internal/storage"
	"github.com/stretchr/testify/require"
)

func registration(userID, festivalID, subEventID string) models.NewParticipation {
	return models.NewParticipation{
		UserName:         "Student " + userID,
		UserID:           userID,
		FestivalID:       festivalID,
		SubEventID:       subEventID,
		Status:           models.ParticipationRegistered,
		RegistrationDate: "2025-03-01T10:00:00Z",
	}
}

func TestCreateParticipation_DuplicateSlot(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	p, err := s.CreateParticipation(ctx, registration("u1", "f1", "e1"))
	require.NoError(t, err)
	require.Equal(t, t0, p.CreatedAt)

	_, err = s.CreateParticipation(ctx, registration("u1", "f1", "e1"))
	require.ErrorIs(t, err, common.ErrDuplicateKey)

	// Festival-level and other sub-event registrations are different slots.
	_, err = s.CreateParticipation(ctx, registration("u1", "f1", ""))
	require.NoError(t, err)
	_, err = s.CreateParticipation(ctx, registration("u1", "f1", "e2"))
	require.NoError(t, err)
	_, err = s.CreateParticipation(ctx, registration("u2", "f1", "e1"))
	require.NoError(t, err)

	_, err = s.CreateParticipation(ctx, registration("u1", "f1", ""))
	require.ErrorIs(t, err, common.ErrDuplicateKey)

	all, err := s.GetAllParticipations(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
}

func TestCreateParticipation_Validation(t *testing.T) {
	s, _ := newTestStore(t)

	in := registration("u1", "f1", "")
	in.Status = "waitlisted"
	_, err := s.CreateParticipation(context.Background(), in)
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = s.CreateParticipation(context.Background(), registration("", "f1", ""))
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestCreateParticipationWithinCapacity(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.CreateParticipationWithinCapacity(ctx, registration("u1", "f1", "e1"), 2)
	require.NoError(t, err)
	_, err = s.CreateParticipationWithinCapacity(ctx, registration("u2", "f1", "e1"), 2)
	require.NoError(t, err)

	_, err = s.CreateParticipationWithinCapacity(ctx, registration("u3", "f1", "e1"), 2)
	require.ErrorIs(t, err, common.ErrCapacityReached)

	// Other sub-events are counted separately.
	_, err = s.CreateParticipationWithinCapacity(ctx, registration("u3", "f1", "e2"), 2)
	require.NoError(t, err)

	// Duplicates win over capacity.
	_, err = s.CreateParticipationWithinCapacity(ctx, registration("u1", "f1", "e1"), 2)
	require.ErrorIs(t, err, common.ErrDuplicateKey)

	got, err := s.GetParticipationsBySubEventID(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "u1", got[0].UserID)
	require.Equal(t, "u2", got[1].UserID)
}

func TestCreateParticipationWithinCapacity_NoLimit(t *testing.T) {
	s, _ := newTestStore(t)

	for i := range 5 {
		_, err := s.CreateParticipationWithinCapacity(context.Background(), registration(fmt.Sprintf("u%d", i), "f1", "e1"), 0)
		require.NoError(t, err)
	}
}

func TestCreateParticipationWithinCapacity_ConcurrentWritersNeverOverfill(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	const limit = 3

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each writer has its own Store over the shared storage, like separate tabs.
			s := New(repo, WithConflictRetries(100, time.Millisecond))
			_, err := s.CreateParticipationWithinCapacity(ctx, registration(fmt.Sprintf("u%d", i), "f1", "e1"), limit)
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			if !errors.Is(err, common.ErrCapacityReached) && !errors.Is(err, common.ErrVersionConflict) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	all, err := New(repo).GetParticipationsBySubEventID(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, all, succeeded)
	require.LessOrEqual(t, succeeded, limit)
	require.Positive(t, succeeded)
}

func TestParticipation_FiltersUpdateDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	p1, err := s.CreateParticipation(ctx, registration("u1", "f1", "e1"))
	require.NoError(t, err)
	p2, err := s.CreateParticipation(ctx, registration("u1", "f2", ""))
	require.NoError(t, err)
	_, err = s.CreateParticipation(ctx, registration("u2", "f1", ""))
	require.NoError(t, err)

	byUser, err := s.GetParticipationsByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	require.Equal(t, p1.ID, byUser[0].ID)
	require.Equal(t, p2.ID, byUser[1].ID)

	byFestival, err := s.GetParticipationsByFestivalID(ctx, "f1")
	require.NoError(t, err)
	require.Len(t, byFestival, 2)

	attended := models.ParticipationAttended
	updated, err := s.UpdateParticipation(ctx, p1.ID, models.ParticipationPatch{Status: &attended})
	require.NoError(t, err)
	require.Equal(t, models.ParticipationAttended, updated.Status)
	require.Equal(t, p1.CreatedAt, updated.CreatedAt)

	// Moving p2 onto p1's slot collides.
	f1, e1 := "f1", "e1"
	_, err = s.UpdateParticipation(ctx, p2.ID, models.ParticipationPatch{FestivalID: &f1, SubEventID: &e1})
	require.ErrorIs(t, err, common.ErrDuplicateKey)

	stored, err := s.GetParticipationByID(ctx, p2.ID)
	require.NoError(t, err)
	require.Equal(t, p2, stored)

	require.NoError(t, s.DeleteParticipation(ctx, p1.ID))
	byUser, err = s.GetParticipationsByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, byUser, 1)
}
