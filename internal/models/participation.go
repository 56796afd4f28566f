package models

import "time"

type ParticipationStatus string

const (
	ParticipationRegistered ParticipationStatus = "registered"
	ParticipationAttended   ParticipationStatus = "attended"
	ParticipationCancelled  ParticipationStatus = "cancelled"
)

// Participation registers a user for a festival and, when SubEventID is set,
// for one of its sub-events. It has no UpdatedAt.
type Participation struct {
	ID               string              `json:"id"`
	UserName         string              `json:"userName"`
	UserID           string              `json:"userId"`
	FestivalID       string              `json:"festivalId"`
	SubEventID       string              `json:"subEventId,omitempty"`
	Status           ParticipationStatus `json:"status"`
	RegistrationDate string              `json:"registrationDate"`
	CreatedAt        time.Time           `json:"createdAt"`
}

// SameSlot reports whether p and o register the same user for the same
// festival and sub-event.
func (p Participation) SameSlot(o Participation) bool {
	return p.UserID == o.UserID && p.FestivalID == o.FestivalID && p.SubEventID == o.SubEventID
}

type NewParticipation struct {
	UserName         string
	UserID           string              `validate:"required"`
	FestivalID       string              `validate:"required"`
	SubEventID       string
	Status           ParticipationStatus `validate:"required,oneof=registered attended cancelled"`
	RegistrationDate string
}

type ParticipationPatch struct {
	UserName         *string
	UserID           *string
	FestivalID       *string
	SubEventID       *string
	Status           *ParticipationStatus
	RegistrationDate *string
}

func (p ParticipationPatch) Apply(x *Participation) {
	setString(&x.UserName, p.UserName)
	setString(&x.UserID, p.UserID)
	setString(&x.FestivalID, p.FestivalID)
	setString(&x.SubEventID, p.SubEventID)
	if p.Status != nil {
		x.Status = *p.Status
	}
	setString(&x.RegistrationDate, p.RegistrationDate)
}
