package models

import "time"

// Expense is money spent on a festival, optionally on one of its sub-events.
type Expense struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	FestivalID  string    `json:"festivalId"`
	SubEventID  string    `json:"subEventId,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type NewExpense struct {
	Title       string  `validate:"required"`
	Amount      float64 `validate:"gte=0"`
	Category    string
	Description string
	Date        string
	FestivalID  string `validate:"required"`
	SubEventID  string
	CreatedBy   string `validate:"required"`
}

type ExpensePatch struct {
	Title       *string
	Amount      *float64
	Category    *string
	Description *string
	Date        *string
	FestivalID  *string
	SubEventID  *string
	CreatedBy   *string
}

func (p ExpensePatch) Apply(e *Expense) {
	setString(&e.Title, p.Title)
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	setString(&e.Category, p.Category)
	setString(&e.Description, p.Description)
	setString(&e.Date, p.Date)
	setString(&e.FestivalID, p.FestivalID)
	setString(&e.SubEventID, p.SubEventID)
	setString(&e.CreatedBy, p.CreatedBy)
}
