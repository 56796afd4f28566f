package models

import "time"

// Role is the kind of account a user registered as.
type Role string

const (
	RoleClubLeader Role = "club_leader"
	RoleStudent    Role = "student"
)

// User is a registered account. Password is kept as entered.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser is the input for creating a User.
type NewUser struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Name     string `validate:"required"`
	Role     Role   `validate:"required,oneof=club_leader student"`
}

// UserPatch holds the mutable User fields.
type UserPatch struct {
	Email    *string
	Password *string
	Name     *string
	Role     *Role
}

// Apply merges the non-nil fields of p into u.
func (p UserPatch) Apply(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
}

// Session is a snapshot of the signed-in user. It is not kept in sync with
// the User record it was taken from.
type Session struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
}

// SessionFor builds the session snapshot of u.
func SessionFor(u *User) Session {
	return Session{UserID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}
