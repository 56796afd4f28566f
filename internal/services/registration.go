package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/coordinet/internal/common"
	"github.com/dmitrijs2005/coordinet/internal/datastore"
	"github.com/dmitrijs2005/coordinet/internal/logging"
	"github.com/dmitrijs2005/coordinet/internal/models"
	"github.com/dmitrijs2005/coordinet/internal/session"
)

// RegistrationService registers the signed-in user for festivals and
// sub-events.
type RegistrationService interface {
	// RemainingCapacity is MaxParticipants minus the participations held by
	// the sub-event. It may be negative when the limit was lowered later.
	RemainingCapacity(ctx context.Context, subEventID string) (int, error)

	RegisterForSubEvent(ctx context.Context, subEventID string) (*models.Participation, error)
	RegisterForFestival(ctx context.Context, festivalID string) (*models.Participation, error)
}

type registrationService struct {
	store *datastore.Store
	log   logging.Logger
	now   func() time.Time
}

func NewRegistrationService(store *datastore.Store, log logging.Logger) RegistrationService {
	return &registrationService{store: store, log: log.With("service", "registration"), now: time.Now}
}

func (r *registrationService) subEvent(ctx context.Context, id string) (*models.SubEvent, error) {
	e, err := r.store.GetSubEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("sub-event %q: %w", id, common.ErrNotFound)
	}
	return e, nil
}

func (r *registrationService) RemainingCapacity(ctx context.Context, subEventID string) (int, error) {
	e, err := r.subEvent(ctx, subEventID)
	if err != nil {
		return 0, err
	}

	taken, err := r.store.GetParticipationsBySubEventID(ctx, subEventID)
	if err != nil {
		return 0, err
	}
	return e.MaxParticipants - len(taken), nil
}

// RegisterForSubEvent refuses with common.ErrSubEventFull once no places
// remain. The final count is re-checked inside the store write.
func (r *registrationService) RegisterForSubEvent(ctx context.Context, subEventID string) (*models.Participation, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}

	e, err := r.subEvent(ctx, subEventID)
	if err != nil {
		return nil, err
	}

	remaining, err := r.RemainingCapacity(ctx, subEventID)
	if err != nil {
		return nil, err
	}
	if remaining <= 0 {
		return nil, common.ErrSubEventFull
	}

	p, err := r.store.CreateParticipationWithinCapacity(ctx, r.registration(sess, e.FestivalID, e.ID), e.MaxParticipants)
	if errors.Is(err, common.ErrCapacityReached) {
		return nil, fmt.Errorf("%w: %w", common.ErrSubEventFull, err)
	}
	if err != nil {
		return nil, err
	}

	r.log.Info(ctx, "registered for sub-event", "user_id", sess.UserID, "sub_event_id", e.ID, "remaining", remaining-1)
	return p, nil
}

func (r *registrationService) RegisterForFestival(ctx context.Context, festivalID string) (*models.Participation, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}

	f, err := r.store.GetFestivalByID(ctx, festivalID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("festival %q: %w", festivalID, common.ErrNotFound)
	}

	p, err := r.store.CreateParticipation(ctx, r.registration(sess, f.ID, ""))
	if err != nil {
		return nil, err
	}

	r.log.Info(ctx, "registered for festival", "user_id", sess.UserID, "festival_id", f.ID)
	return p, nil
}

func (r *registrationService) registration(sess *models.Session, festivalID, subEventID string) models.NewParticipation {
	return models.NewParticipation{
		UserName:         sess.Name,
		UserID:           sess.UserID,
		FestivalID:       festivalID,
		SubEventID:       subEventID,
		Status:           models.ParticipationRegistered,
		RegistrationDate: r.now().UTC().Format(time.RFC3339Nano),
	}
}
