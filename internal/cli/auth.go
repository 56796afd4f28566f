package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/coordinet/internal/models"
)

// SignUp asks for the account details, creates the account and signs it in.
func (a *App) SignUp(ctx context.Context) error {
	name, err := a.prompt("Enter name")
	if err != nil {
		return err
	}
	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.out)
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}
	role, err := a.prompt("Role: (l)eader or (s)tudent")
	if err != nil {
		return err
	}

	sess, err := a.auth.SignUp(ctx, models.NewUser{
		Email:    email,
		Password: password,
		Name:     name,
		Role:     parseRole(role),
	})
	if err != nil {
		return err
	}

	a.session = sess
	a.println("Welcome,", sess.Name)
	return nil
}

func (a *App) SignIn(ctx context.Context) error {
	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	sess, err := a.auth.SignIn(ctx, email, password)
	if err != nil {
		return err
	}

	a.session = sess
	a.println("Signed in as", sess.Name, "("+string(sess.Role)+")")
	return nil
}

func (a *App) SignOut(ctx context.Context) error {
	if err := a.auth.SignOut(ctx); err != nil {
		return err
	}
	a.session = nil
	a.println("Signed out")
	return nil
}

func (a *App) WhoAmI(_ context.Context) error {
	s := a.session
	a.printf("%s <%s> %s id=%s\n", s.Name, s.Email, s.Role, s.UserID)
	return nil
}

func parseRole(s string) models.Role {
	switch s {
	case "l", "leader", string(models.RoleClubLeader):
		return models.RoleClubLeader
	case "s", string(models.RoleStudent):
		return models.RoleStudent
	}
	return models.Role(s)
}
