package datastore

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/coordinet/internal/common"
	"github.com/dmitrijs2005/coordinet/internal/models"
)

var users = collection[models.User]{
	name:   KeyUsers,
	entity: "user",
	id:     func(u *models.User) string { return u.ID },
}

func emailTaken(items []models.User, email, exceptID string) error {
	for i := range items {
		if items[i].Email == email && items[i].ID != exceptID {
			return fmt.Errorf("user with email %q: %w", email, common.ErrDuplicateKey)
		}
	}
	return nil
}

func (s *Store) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return users.all(ctx, s)
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return users.byID(ctx, s, id)
}

// GetUserByEmail matches the email exactly.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return users.find(ctx, s, func(u *models.User) bool { return u.Email == email })
}

// CreateUser stores a new user. The email must not be registered yet.
func (s *Store) CreateUser(ctx context.Context, in models.NewUser) (*models.User, error) {
	if err := models.Validate(in); err != nil {
		return nil, err
	}

	check := func(items []models.User) error { return emailTaken(items, in.Email, "") }
	return users.insert(ctx, s, check, func() models.User {
		return models.User{
			ID:        s.newID(),
			Email:     in.Email,
			Password:  in.Password,
			Name:      in.Name,
			Role:      in.Role,
			CreatedAt: s.stamp(),
		}
	})
}

// UpdateUser applies patch. Changing the email to one held by another user
// fails with common.ErrDuplicateKey.
func (s *Store) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	return users.update(ctx, s, id, patch.Apply, func(items []models.User, u *models.User) error {
		return emailTaken(items, u.Email, u.ID)
	})
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	return users.remove(ctx, s, id)
}
