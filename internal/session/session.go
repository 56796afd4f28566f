// Package session carries the signed-in user through a context.Context.
//
// The persisted session lives in the datastore; front-ends load it once per
// command or request and attach it with WithSession so services can read it
// without going back to storage.
package session

import (
	"context"

	"github.com/dmitrijs2005/coordinet/internal/common"
	"github.com/dmitrijs2005/coordinet/internal/models"
)

type ctxKey struct{}

// WithSession returns a copy of ctx carrying sess. A nil sess yields a
// context without a session.
func WithSession(ctx context.Context, sess *models.Session) context.Context {
	if sess == nil {
		return context.WithValue(ctx, ctxKey{}, (*models.Session)(nil))
	}
	s := *sess
	return context.WithValue(ctx, ctxKey{}, &s)
}

// FromContext returns the session attached to ctx, or nil.
func FromContext(ctx context.Context) *models.Session {
	s, _ := ctx.Value(ctxKey{}).(*models.Session)
	return s
}

// Require is FromContext that fails with common.ErrNoSession when nobody is
// signed in.
func Require(ctx context.Context) (*models.Session, error) {
	s := FromContext(ctx)
	if s == nil {
		return nil, common.ErrNoSession
	}
	return s, nil
}
