package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/coordinet/internal/common"
	"github.com/dmitrijs2005/coordinet/internal/logging"
	"github.com/dmitrijs2005/coordinet/internal/models"
	"github.com/stretchr/testify/require"
)

func TestSignUp_CreatesUserAndSession(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	auth := NewAuthService(store, logging.Discard())

	sess, err := auth.SignUp(ctx, models.NewUser{
		Email: "a@example.com", Password: "pw", Name: "Ann", Role: models.RoleStudent,
	})
	require.NoError(t, err)
	require.Equal(t, "a@example.com", sess.Email)
	require.Equal(t, models.RoleStudent, sess.Role)

	u, err := store.GetUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, u.ID, sess.UserID)

	current, err := auth.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, sess, current)
}

func TestSignUp_DuplicateEmailKeepsSession(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	auth := NewAuthService(store, logging.Discard())
	signUp(t, store, "a@example.com", models.RoleStudent)
	require.NoError(t, auth.SignOut(ctx))

	_, err := auth.SignUp(ctx, models.NewUser{
		Email: "a@example.com", Password: "other", Name: "Bob", Role: models.RoleClubLeader,
	})
	require.ErrorIs(t, err, common.ErrDuplicateKey)

	current, err := auth.Current(ctx)
	require.NoError(t, err)
	require.Nil(t, current)
}

func TestSignUp_Validation(t *testing.T) {
	auth := NewAuthService(newStore(t), logging.Discard())

	_, err := auth.SignUp(context.Background(), models.NewUser{Email: "a@example.com", Name: "Ann", Role: models.RoleStudent})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	auth := NewAuthService(store, logging.Discard())
	signUp(t, store, "a@example.com", models.RoleClubLeader)
	require.NoError(t, auth.SignOut(ctx))

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"ok", "a@example.com", "pw-a@example.com", nil},
		{"wrong password", "a@example.com", "nope", common.ErrInvalidCredentials},
		{"unknown email", "b@example.com", "pw-a@example.com", common.ErrInvalidCredentials},
		{"empty password", "a@example.com", "", common.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, auth.SignOut(ctx))

			sess, err := auth.SignIn(ctx, tt.email, tt.password)
			current, cerr := auth.Current(ctx)
			require.NoError(t, cerr)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, current)
				return
			}
			require.NoError(t, err)
			require.Equal(t, models.RoleClubLeader, sess.Role)
			require.Equal(t, sess, current)
		})
	}
}

func TestSignOut_Idempotent(t *testing.T) {
	ctx := context.Background()
	auth := NewAuthService(newStore(t), logging.Discard())

	require.NoError(t, auth.SignOut(ctx))
	require.NoError(t, auth.SignOut(ctx))
}
