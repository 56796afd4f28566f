package datastore

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/coordinet/internal/models"
)

var clubs = collection[models.Club]{
	name:   KeyClubs,
	entity: "club",
	id:     func(c *models.Club) string { return c.ID },
}

func (s *Store) GetAllClubs(ctx context.Context) ([]models.Club, error) {
	return clubs.all(ctx, s)
}

func (s *Store) GetClubByID(ctx context.Context, id string) (*models.Club, error) {
	return clubs.byID(ctx, s, id)
}

func (s *Store) GetClubsByLeaderID(ctx context.Context, leaderID string) ([]models.Club, error) {
	return clubs.filter(ctx, s, func(c *models.Club) bool { return c.LeaderID == leaderID })
}

// CreateClub stores a new club whose only member is its leader.
func (s *Store) CreateClub(ctx context.Context, in models.NewClub) (*models.Club, error) {
	if err := models.Validate(in); err != nil {
		return nil, err
	}

	return clubs.insert(ctx, s, nil, func() models.Club {
		now := s.stamp()
		return models.Club{
			ID:          s.newID(),
			Name:        in.Name,
			Description: in.Description,
			LeaderID:    in.LeaderID,
			MemberIDs:   []string{in.LeaderID},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	})
}

func (s *Store) UpdateClub(ctx context.Context, id string, patch models.ClubPatch) (*models.Club, error) {
	return clubs.update(ctx, s, id, func(c *models.Club) {
		patch.Apply(c)
		c.UpdatedAt = s.restamp(c.UpdatedAt)
	}, nil)
}

// AddClubMember appends userID to the club members unless it is already there.
func (s *Store) AddClubMember(ctx context.Context, clubID, userID string) (*models.Club, error) {
	return clubs.update(ctx, s, clubID, func(c *models.Club) {
		if slices.Contains(c.MemberIDs, userID) {
			return
		}
		c.MemberIDs = append(slices.Clone(c.MemberIDs), userID)
		c.UpdatedAt = s.restamp(c.UpdatedAt)
	}, nil)
}

func (s *Store) DeleteClub(ctx context.Context, id string) error {
	return clubs.remove(ctx, s, id)
}
