// Package guard decides whether the current session may open a route.
//
// It is a navigation convenience for front-ends, not an access-control
// layer: the datastore never consults it.
package guard

import (
	"slices"

	"github.com/dmitrijs2005/coordinet/internal/models"
)

// Well-known routes.
const (
	SignInPath           = "/auth/signin"
	SignUpPath           = "/auth/signup"
	LeaderDashboardPath  = "/dashboard/leader"
	StudentDashboardPath = "/dashboard/student"
)

// Decision is the outcome of Check. Redirect is empty when Allowed is true
// or when the caller should stay where it is.
type Decision struct {
	Allowed  bool
	Redirect string
}

// DashboardFor returns the home route of a role.
func DashboardFor(role models.Role) string {
	if role == models.RoleClubLeader {
		return LeaderDashboardPath
	}
	return StudentDashboardPath
}

// Check evaluates a visit of path with sess against the roles allowed on it.
//
// Without a session the visitor is sent to sign in. A session with another
// role is sent to its own dashboard, unless it is already there.
func Check(sess *models.Session, path string, allowed ...models.Role) Decision {
	if sess == nil {
		return Decision{Redirect: SignInPath}
	}
	if slices.Contains(allowed, sess.Role) {
		return Decision{Allowed: true}
	}

	target := DashboardFor(sess.Role)
	if path == target {
		return Decision{}
	}
	return Decision{Redirect: target}
}
