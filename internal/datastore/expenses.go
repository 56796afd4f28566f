package datastore

import (
	"context"

	"github.com/dmitrijs2005/coordinet/internal/models"
)

var expenses = collection[models.Expense]{
	name:   KeyExpenses,
	entity: "expense",
	id:     func(e *models.Expense) string { return e.ID },
}

func (s *Store) GetAllExpenses(ctx context.Context) ([]models.Expense, error) {
	return expenses.all(ctx, s)
}

func (s *Store) GetExpenseByID(ctx context.Context, id string) (*models.Expense, error) {
	return expenses.byID(ctx, s, id)
}

func (s *Store) GetExpensesByFestivalID(ctx context.Context, festivalID string) ([]models.Expense, error) {
	return expenses.filter(ctx, s, func(e *models.Expense) bool { return e.FestivalID == festivalID })
}

func (s *Store) GetExpensesBySubEventID(ctx context.Context, subEventID string) ([]models.Expense, error) {
	return expenses.filter(ctx, s, func(e *models.Expense) bool { return e.SubEventID == subEventID })
}

func (s *Store) CreateExpense(ctx context.Context, in models.NewExpense) (*models.Expense, error) {
	if err := models.Validate(in); err != nil {
		return nil, err
	}

	return expenses.insert(ctx, s, nil, func() models.Expense {
		now := s.stamp()
		return models.Expense{
			ID:          s.newID(),
			Title:       in.Title,
			Amount:      in.Amount,
			Category:    in.Category,
			Description: in.Description,
			Date:        in.Date,
			FestivalID:  in.FestivalID,
			SubEventID:  in.SubEventID,
			CreatedBy:   in.CreatedBy,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	})
}

func (s *Store) UpdateExpense(ctx context.Context, id string, patch models.ExpensePatch) (*models.Expense, error) {
	return expenses.update(ctx, s, id, func(e *models.Expense) {
		patch.Apply(e)
		e.UpdatedAt = s.restamp(e.UpdatedAt)
	}, nil)
}

func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	return expenses.remove(ctx, s, id)
}
