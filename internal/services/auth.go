package services

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/dmitrijs2005/coordinet/internal/common"
	"github.com/dmitrijs2005/coordinet/internal/datastore"
	"github.com/dmitrijs2005/coordinet/internal/logging"
	"github.com/dmitrijs2005/coordinet/internal/models"
)

// AuthService signs users up, in and out. The resulting session is persisted
// in the datastore.
type AuthService interface {
	SignUp(ctx context.Context, in models.NewUser) (*models.Session, error)
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	SignOut(ctx context.Context) error
	Current(ctx context.Context) (*models.Session, error)
}

type authService struct {
	store *datastore.Store
	log   logging.Logger
}

func NewAuthService(store *datastore.Store, log logging.Logger) AuthService {
	return &authService{store: store, log: log.With("service", "auth")}
}

// SignUp creates the account and signs it in.
func (a *authService) SignUp(ctx context.Context, in models.NewUser) (*models.Session, error) {
	existing, err := a.store.GetUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists: %w", common.ErrDuplicateKey)
	}

	u, err := a.store.CreateUser(ctx, in)
	if err != nil {
		return nil, err
	}

	return a.start(ctx, u)
}

// SignIn checks the credentials and stores the session. Unknown emails and
// wrong passwords fail alike with common.ErrInvalidCredentials.
func (a *authService) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	u, err := a.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if u == nil || subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) == 0 {
		a.log.Info(ctx, "sign-in rejected", "email", email)
		return nil, common.ErrInvalidCredentials
	}

	return a.start(ctx, u)
}

func (a *authService) start(ctx context.Context, u *models.User) (*models.Session, error) {
	sess := models.SessionFor(u)
	if err := a.store.SetSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	a.log.Info(ctx, "signed in", "user_id", u.ID, "role", u.Role)
	return &sess, nil
}

func (a *authService) SignOut(ctx context.Context) error {
	if err := a.store.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	a.log.Info(ctx, "signed out")
	return nil
}

// Current returns the persisted session, or nil.
func (a *authService) Current(ctx context.Context) (*models.Session, error) {
	return a.store.GetSession(ctx)
}
