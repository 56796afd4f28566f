package datastore

import (
	"context"

	"github.com/dmitrijs2005/coordinet/internal/models"
)

var festivals = collection[models.Festival]{
	name:   KeyFestivals,
	entity: "festival",
	id:     func(f *models.Festival) string { return f.ID },
}

func (s *Store) GetAllFestivals(ctx context.Context) ([]models.Festival, error) {
	return festivals.all(ctx, s)
}

func (s *Store) GetFestivalByID(ctx context.Context, id string) (*models.Festival, error) {
	return festivals.byID(ctx, s, id)
}

func (s *Store) GetFestivalsByClubID(ctx context.Context, clubID string) ([]models.Festival, error) {
	return festivals.filter(ctx, s, func(f *models.Festival) bool { return f.ClubID == clubID })
}

func (s *Store) GetFestivalsByOrganizerID(ctx context.Context, organizerID string) ([]models.Festival, error) {
	return festivals.filter(ctx, s, func(f *models.Festival) bool { return f.OrganizerID == organizerID })
}

func (s *Store) CreateFestival(ctx context.Context, in models.NewFestival) (*models.Festival, error) {
	if err := models.Validate(in); err != nil {
		return nil, err
	}

	return festivals.insert(ctx, s, nil, func() models.Festival {
		now := s.stamp()
		return models.Festival{
			ID:          s.newID(),
			Name:        in.Name,
			Description: in.Description,
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			Location:    in.Location,
			OrganizerID: in.OrganizerID,
			ClubID:      in.ClubID,
			Poster:      in.Poster,
			Brochure:    in.Brochure,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	})
}

func (s *Store) UpdateFestival(ctx context.Context, id string, patch models.FestivalPatch) (*models.Festival, error) {
	return festivals.update(ctx, s, id, func(f *models.Festival) {
		patch.Apply(f)
		f.UpdatedAt = s.restamp(f.UpdatedAt)
	}, nil)
}

// DeleteFestival removes only the festival; its sub-events, tasks, expenses
// and participations are kept.
func (s *Store) DeleteFestival(ctx context.Context, id string) error {
	return festivals.remove(ctx, s, id)
}
