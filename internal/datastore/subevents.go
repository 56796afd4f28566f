package datastore

import (
	"context"

	"github.com/dmitrijs2005/coordinet/internal/models"
)

var subEvents = collection[models.SubEvent]{
	name:   KeySubEvents,
	entity: "sub-event",
	id:     func(e *models.SubEvent) string { return e.ID },
}

func (s *Store) GetAllSubEvents(ctx context.Context) ([]models.SubEvent, error) {
	return subEvents.all(ctx, s)
}

func (s *Store) GetSubEventByID(ctx context.Context, id string) (*models.SubEvent, error) {
	return subEvents.byID(ctx, s, id)
}

func (s *Store) GetSubEventsByFestivalID(ctx context.Context, festivalID string) ([]models.SubEvent, error) {
	return subEvents.filter(ctx, s, func(e *models.SubEvent) bool { return e.FestivalID == festivalID })
}

func (s *Store) CreateSubEvent(ctx context.Context, in models.NewSubEvent) (*models.SubEvent, error) {
	if err := models.Validate(in); err != nil {
		return nil, err
	}

	return subEvents.insert(ctx, s, nil, func() models.SubEvent {
		now := s.stamp()
		return models.SubEvent{
			ID:              s.newID(),
			FestivalID:      in.FestivalID,
			Name:            in.Name,
			Description:     in.Description,
			StartDate:       in.StartDate,
			StartTime:       in.StartTime,
			EndDate:         in.EndDate,
			EndTime:         in.EndTime,
			Location:        in.Location,
			MaxParticipants: in.MaxParticipants,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
	})
}

func (s *Store) UpdateSubEvent(ctx context.Context, id string, patch models.SubEventPatch) (*models.SubEvent, error) {
	return subEvents.update(ctx, s, id, func(e *models.SubEvent) {
		patch.Apply(e)
		e.UpdatedAt = s.restamp(e.UpdatedAt)
	}, nil)
}

func (s *Store) DeleteSubEvent(ctx context.Context, id string) error {
	return subEvents.remove(ctx, s, id)
}
