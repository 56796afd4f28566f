package datastore

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/coordinet/internal/common"
	"github.com/dmitrijs2005/coordinet/internal/models"
)

var participations = collection[models.Participation]{
	name:   KeyParticipations,
	entity: "participation",
	id:     func(p *models.Participation) string { return p.ID },
}

func slotTaken(items []models.Participation, p models.Participation) error {
	for i := range items {
		if items[i].ID != p.ID && items[i].SameSlot(p) {
			return fmt.Errorf("participation of user %q in festival %q sub-event %q: %w",
				p.UserID, p.FestivalID, p.SubEventID, common.ErrDuplicateKey)
		}
	}
	return nil
}

func (s *Store) GetAllParticipations(ctx context.Context) ([]models.Participation, error) {
	return participations.all(ctx, s)
}

func (s *Store) GetParticipationByID(ctx context.Context, id string) (*models.Participation, error) {
	return participations.byID(ctx, s, id)
}

func (s *Store) GetParticipationsByUserID(ctx context.Context, userID string) ([]models.Participation, error) {
	return participations.filter(ctx, s, func(p *models.Participation) bool { return p.UserID == userID })
}

func (s *Store) GetParticipationsByFestivalID(ctx context.Context, festivalID string) ([]models.Participation, error) {
	return participations.filter(ctx, s, func(p *models.Participation) bool { return p.FestivalID == festivalID })
}

func (s *Store) GetParticipationsBySubEventID(ctx context.Context, subEventID string) ([]models.Participation, error) {
	return participations.filter(ctx, s, func(p *models.Participation) bool { return p.SubEventID == subEventID })
}

// CreateParticipation stores a registration. A user can hold one
// participation per (festival, sub-event) pair.
func (s *Store) CreateParticipation(ctx context.Context, in models.NewParticipation) (*models.Participation, error) {
	return s.createParticipation(ctx, in, 0)
}

// CreateParticipationWithinCapacity is CreateParticipation that also fails
// with common.ErrCapacityReached when the sub-event already holds limit
// participations. The count and the insert are one versioned write, so two
// concurrent registrations cannot both take the last place. limit <= 0
// disables the limit.
func (s *Store) CreateParticipationWithinCapacity(ctx context.Context, in models.NewParticipation, limit int) (*models.Participation, error) {
	return s.createParticipation(ctx, in, limit)
}

func (s *Store) createParticipation(ctx context.Context, in models.NewParticipation, limit int) (*models.Participation, error) {
	if err := models.Validate(in); err != nil {
		return nil, err
	}

	slot := models.Participation{UserID: in.UserID, FestivalID: in.FestivalID, SubEventID: in.SubEventID}
	check := func(items []models.Participation) error {
		if err := slotTaken(items, slot); err != nil {
			return err
		}
		if limit <= 0 {
			return nil
		}
		taken := 0
		for i := range items {
			if items[i].SubEventID == in.SubEventID {
				taken++
			}
		}
		if taken >= limit {
			return fmt.Errorf("sub-event %q holds %d of %d: %w", in.SubEventID, taken, limit, common.ErrCapacityReached)
		}
		return nil
	}

	return participations.insert(ctx, s, check, func() models.Participation {
		return models.Participation{
			ID:               s.newID(),
			UserName:         in.UserName,
			UserID:           in.UserID,
			FestivalID:       in.FestivalID,
			SubEventID:       in.SubEventID,
			Status:           in.Status,
			RegistrationDate: in.RegistrationDate,
			CreatedAt:        s.stamp(),
		}
	})
}

// UpdateParticipation applies patch. Moving a participation onto a slot
// held by another one fails with common.ErrDuplicateKey.
func (s *Store) UpdateParticipation(ctx context.Context, id string, patch models.ParticipationPatch) (*models.Participation, error) {
	return participations.update(ctx, s, id, patch.Apply, func(items []models.Participation, p *models.Participation) error {
		return slotTaken(items, *p)
	})
}

func (s *Store) DeleteParticipation(ctx context.Context, id string) error {
	return participations.remove(ctx, s, id)
}
