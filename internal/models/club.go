package models

import "time"

// Club is a group led by a club leader.
type Club struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	LeaderID    string    `json:"leaderId"`
	MemberIDs   []string  `json:"memberIds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewClub is the input for creating a Club. Membership is seeded by the store.
type NewClub struct {
	Name        string `validate:"required"`
	Description string
	LeaderID    string `validate:"required"`
}

type ClubPatch struct {
	Name        *string
	Description *string
	LeaderID    *string
	MemberIDs   *[]string
}

// Apply merges the non-nil fields of p into c.
func (p ClubPatch) Apply(c *Club) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.LeaderID != nil {
		c.LeaderID = *p.LeaderID
	}
	if p.MemberIDs != nil {
		c.MemberIDs = append([]string(nil), (*p.MemberIDs)...)
	}
}
