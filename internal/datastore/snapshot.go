package datastore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/coordinet/internal/common"
	"github.com/dmitrijs2005/coordinet/internal/models"
)

// Snapshot is the whole persisted state, used for backup and restore.
type Snapshot struct {
	Users          []models.User          `json:"users"`
	Session        *models.Session        `json:"session,omitempty"`
	Clubs          []models.Club          `json:"clubs"`
	Festivals      []models.Festival      `json:"festivals"`
	SubEvents      []models.SubEvent      `json:"subevents"`
	Tasks          []models.Task          `json:"tasks"`
	Expenses       []models.Expense       `json:"expenses"`
	Participations []models.Participation `json:"participations"`
}

// Snapshot reads every collection and the session in one listing of the
// repository, so the result reflects a single point in time.
func (s *Store) Snapshot(ctx context.Context) (*Snapshot, error) {
	stored, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	raw := func(name string) []byte { return stored[s.key(name)] }

	var snap Snapshot
	if snap.Users, err = users.decode(raw(KeyUsers)); err != nil {
		return nil, err
	}
	if snap.Session, err = decodeSession(raw(KeySession)); err != nil {
		return nil, err
	}
	if snap.Clubs, err = clubs.decode(raw(KeyClubs)); err != nil {
		return nil, err
	}
	if snap.Festivals, err = festivals.decode(raw(KeyFestivals)); err != nil {
		return nil, err
	}
	if snap.SubEvents, err = subEvents.decode(raw(KeySubEvents)); err != nil {
		return nil, err
	}
	if snap.Tasks, err = tasks.decode(raw(KeyTasks)); err != nil {
		return nil, err
	}
	if snap.Expenses, err = expenses.decode(raw(KeyExpenses)); err != nil {
		return nil, err
	}
	if snap.Participations, err = participations.decode(raw(KeyParticipations)); err != nil {
		return nil, err
	}
	return &snap, nil
}

// check applies the uniqueness rules of CreateUser and CreateParticipation
// to a whole snapshot.
func (snap *Snapshot) check() error {
	emails := make(map[string]bool, len(snap.Users))
	for _, u := range snap.Users {
		if emails[u.Email] {
			return fmt.Errorf("user with email %q: %w", u.Email, common.ErrDuplicateKey)
		}
		emails[u.Email] = true
	}

	type slot struct{ user, festival, subEvent string }
	slots := make(map[slot]bool, len(snap.Participations))
	for _, p := range snap.Participations {
		k := slot{p.UserID, p.FestivalID, p.SubEventID}
		if slots[k] {
			return fmt.Errorf("participation of user %q in festival %q sub-event %q: %w",
				p.UserID, p.FestivalID, p.SubEventID, common.ErrDuplicateKey)
		}
		slots[k] = true
	}
	return nil
}

// Restore replaces the persisted state with snap in one batch. A nil
// session signs the current user out. A snapshot holding two users with
// one email, or two participations in one slot, is refused with
// common.ErrDuplicateKey and nothing is written.
func (s *Store) Restore(ctx context.Context, snap *Snapshot) error {
	if err := snap.check(); err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	collections := map[string]any{
		KeyUsers:          orEmpty(snap.Users),
		KeyClubs:          orEmpty(snap.Clubs),
		KeyFestivals:      orEmpty(snap.Festivals),
		KeySubEvents:      orEmpty(snap.SubEvents),
		KeyTasks:          orEmpty(snap.Tasks),
		KeyExpenses:       orEmpty(snap.Expenses),
		KeyParticipations: orEmpty(snap.Participations),
	}
	if snap.Session != nil {
		collections[KeySession] = snap.Session
	}

	set := make(map[string][]byte, len(collections))
	for name, v := range collections {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		set[s.key(name)] = raw
	}

	var del []string
	if snap.Session == nil {
		del = append(del, s.key(KeySession))
	}

	if err := s.repo.Batch(ctx, set, del); err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	s.log.Info(ctx, "store restored",
		"users", len(snap.Users),
		"clubs", len(snap.Clubs),
		"festivals", len(snap.Festivals),
		"participations", len(snap.Participations),
	)
	return nil
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
