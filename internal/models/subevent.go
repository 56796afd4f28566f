package models

import "time"

// SubEvent is a scheduled activity of a festival with a participant cap.
type SubEvent struct {
	ID              string    `json:"id"`
	FestivalID      string    `json:"festivalId"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	StartDate       string    `json:"startDate"`
	StartTime       string    `json:"startTime"`
	EndDate         string    `json:"endDate"`
	EndTime         string    `json:"endTime"`
	Location        string    `json:"location"`
	MaxParticipants int       `json:"maxParticipants"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NewSubEvent is the input for creating a SubEvent. MaxParticipants is
// expected to be positive; callers collecting user input check it.
type NewSubEvent struct {
	FestivalID      string `validate:"required"`
	Name            string `validate:"required"`
	Description     string
	StartDate       string
	StartTime       string
	EndDate         string
	EndTime         string
	Location        string
	MaxParticipants int
}

type SubEventPatch struct {
	FestivalID      *string
	Name            *string
	Description     *string
	StartDate       *string
	StartTime       *string
	EndDate         *string
	EndTime         *string
	Location        *string
	MaxParticipants *int
}

func (p SubEventPatch) Apply(s *SubEvent) {
	setString(&s.FestivalID, p.FestivalID)
	setString(&s.Name, p.Name)
	setString(&s.Description, p.Description)
	setString(&s.StartDate, p.StartDate)
	setString(&s.StartTime, p.StartTime)
	setString(&s.EndDate, p.EndDate)
	setString(&s.EndTime, p.EndTime)
	setString(&s.Location, p.Location)
	if p.MaxParticipants != nil {
		s.MaxParticipants = *p.MaxParticipants
	}
}
