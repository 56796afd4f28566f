package datastore

import (
	"context"

	"github.com/dmitrijs2005/coordinet/internal/models"
)

var tasks = collection[models.Task]{
	name:   KeyTasks,
	entity: "task",
	id:     func(t *models.Task) string { return t.ID },
}

func (s *Store) GetAllTasks(ctx context.Context) ([]models.Task, error) {
	return tasks.all(ctx, s)
}

func (s *Store) GetTaskByID(ctx context.Context, id string) (*models.Task, error) {
	return tasks.byID(ctx, s, id)
}

func (s *Store) GetTasksByFestivalID(ctx context.Context, festivalID string) ([]models.Task, error) {
	return tasks.filter(ctx, s, func(t *models.Task) bool { return t.FestivalID == festivalID })
}

func (s *Store) GetTasksBySubEventID(ctx context.Context, subEventID string) ([]models.Task, error) {
	return tasks.filter(ctx, s, func(t *models.Task) bool { return t.SubEventID == subEventID })
}

func (s *Store) GetTasksByAssigneeID(ctx context.Context, assigneeID string) ([]models.Task, error) {
	return tasks.filter(ctx, s, func(t *models.Task) bool { return t.AssigneeID == assigneeID })
}

func (s *Store) CreateTask(ctx context.Context, in models.NewTask) (*models.Task, error) {
	if err := models.Validate(in); err != nil {
		return nil, err
	}

	return tasks.insert(ctx, s, nil, func() models.Task {
		now := s.stamp()
		return models.Task{
			ID:          s.newID(),
			Title:       in.Title,
			Description: in.Description,
			Status:      in.Status,
			AssigneeID:  in.AssigneeID,
			FestivalID:  in.FestivalID,
			SubEventID:  in.SubEventID,
			DueDate:     in.DueDate,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	})
}

func (s *Store) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	return tasks.update(ctx, s, id, func(t *models.Task) {
		patch.Apply(t)
		t.UpdatedAt = s.restamp(t.UpdatedAt)
	}, nil)
}

func (s *Store) DeleteTask(ctx context.Context, id string) error {
	return tasks.remove(ctx, s, id)
}
