package models

import "time"

// Festival belongs to a club. Poster and Brochure hold data URLs or "".
type Festival struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Location    string    `json:"location"`
	OrganizerID string    `json:"organizerId"`
	ClubID      string    `json:"clubId"`
	Poster      string    `json:"poster"`
	Brochure    string    `json:"brochure"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type NewFestival struct {
	Name        string `validate:"required"`
	Description string
	StartDate   string `validate:"required"`
	EndDate     string `validate:"required"`
	Location    string
	OrganizerID string `validate:"required"`
	ClubID      string `validate:"required"`
	Poster      string
	Brochure    string
}

type FestivalPatch struct {
	Name        *string
	Description *string
	StartDate   *string
	EndDate     *string
	Location    *string
	OrganizerID *string
	ClubID      *string
	Poster      *string
	Brochure    *string
}

func (p FestivalPatch) Apply(f *Festival) {
	setString(&f.Name, p.Name)
	setString(&f.Description, p.Description)
	setString(&f.StartDate, p.StartDate)
	setString(&f.EndDate, p.EndDate)
	setString(&f.Location, p.Location)
	setString(&f.OrganizerID, p.OrganizerID)
	setString(&f.ClubID, p.ClubID)
	setString(&f.Poster, p.Poster)
	setString(&f.Brochure, p.Brochure)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
