package datastore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/coordinet/internal/models"
)

// GetSession returns the signed-in user snapshot, or nil when nobody is
// signed in.
func (s *Store) GetSession(ctx context.Context) (*models.Session, error) {
	raw, err := s.repo.Get(ctx, s.key(KeySession))
	if err != nil {
		return nil, err
	}
	return decodeSession(raw)
}

func decodeSession(raw []byte) (*models.Session, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

// SetSession overwrites the session. The user is not looked up.
func (s *Store) SetSession(ctx context.Context, sess models.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.repo.Set(ctx, s.key(KeySession), raw); err != nil {
		return err
	}

	s.log.Debug(ctx, "session set", "user_id", sess.UserID, "role", sess.Role)
	return nil
}

func (s *Store) ClearSession(ctx context.Context) error {
	if err := s.repo.Delete(ctx, s.key(KeySession)); err != nil {
		return err
	}

	s.log.Debug(ctx, "session cleared")
	return nil
}
