package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/coordinet/internal/datastore"
	"github.com/dmitrijs2005/coordinet/internal/logging"
	"github.com/dmitrijs2005/coordinet/internal/models"
	"github.com/dmitrijs2005/coordinet/internal/session"
	"github.com/dmitrijs2005/coordinet/internal/storage"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *datastore.Store {
	t.Helper()
	return datastore.New(storage.NewMemoryRepository(), datastore.WithConflictRetries(3, time.Millisecond))
}

func signUp(t *testing.T, store *datastore.Store, email string, role models.Role) context.Context {
	t.Helper()
	sess, err := NewAuthService(store, logging.Discard()).SignUp(context.Background(), models.NewUser{
		Email:    email,
		Password: "pw-" + email,
		Name:     "Name " + email,
		Role:     role,
	})
	require.NoError(t, err)
	return session.WithSession(context.Background(), sess)
}

func leaderWithFestival(t *testing.T, store *datastore.Store) (context.Context, *models.Festival) {
	t.Helper()
	ctx := signUp(t, store, "leader@example.com", models.RoleClubLeader)
	org := NewOrganizerService(store, logging.Discard())

	club, err := org.CreateClub(ctx, "Drama", "Stage club")
	require.NoError(t, err)
	f, err := org.CreateFestival(ctx, FestivalInput{
		ClubID:    club.ID,
		Name:      "Spring Fest",
		StartDate: "2030-04-01",
		EndDate:   "2030-04-03",
		Location:  "Campus",
	})
	require.NoError(t, err)
	return ctx, f
}
