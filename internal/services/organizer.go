package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/coordinet/internal/common"
	"github.com/dmitrijs2005/coordinet/internal/datastore"
	"github.com/dmitrijs2005/coordinet/internal/filex"
	"github.com/dmitrijs2005/coordinet/internal/logging"
	"github.com/dmitrijs2005/coordinet/internal/models"
	"github.com/dmitrijs2005/coordinet/internal/session"
)

// FestivalInput is what a leader fills in to create a festival. Poster and
// brochure are file paths; they are inlined as data URLs.
type FestivalInput struct {
	ClubID       string
	Name         string
	Description  string
	StartDate    string
	EndDate      string
	Location     string
	PosterPath   string
	BrochurePath string
}

// OrganizerService covers what club leaders do: running clubs and
// festivals and filling festivals with sub-events, tasks and expenses.
type OrganizerService interface {
	CreateClub(ctx context.Context, name, description string) (*models.Club, error)
	CreateFestival(ctx context.Context, in FestivalInput) (*models.Festival, error)
	AddSubEvent(ctx context.Context, festivalID string, in models.NewSubEvent) (*models.SubEvent, error)
	AddTask(ctx context.Context, festivalID string, in models.NewTask) (*models.Task, error)
	AddExpense(ctx context.Context, festivalID string, in models.NewExpense) (*models.Expense, error)
}

type organizerService struct {
	store *datastore.Store
	log   logging.Logger
}

func NewOrganizerService(store *datastore.Store, log logging.Logger) OrganizerService {
	return &organizerService{store: store, log: log.With("service", "organizer")}
}

func (o *organizerService) leader(ctx context.Context) (*models.Session, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	if sess.Role != models.RoleClubLeader {
		return nil, fmt.Errorf("role %s: %w", sess.Role, common.ErrForbidden)
	}
	return sess, nil
}

// organizedFestival loads a festival the signed-in user organizes.
func (o *organizerService) organizedFestival(ctx context.Context, festivalID string) (*models.Session, *models.Festival, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, nil, err
	}

	f, err := o.store.GetFestivalByID(ctx, festivalID)
	if err != nil {
		return nil, nil, err
	}
	if f == nil {
		return nil, nil, fmt.Errorf("festival %q: %w", festivalID, common.ErrNotFound)
	}
	if !IsOrganizer(sess, f) {
		return nil, nil, fmt.Errorf("festival %q is organized by someone else: %w", festivalID, common.ErrForbidden)
	}
	return sess, f, nil
}

func (o *organizerService) CreateClub(ctx context.Context, name, description string) (*models.Club, error) {
	sess, err := o.leader(ctx)
	if err != nil {
		return nil, err
	}

	c, err := o.store.CreateClub(ctx, models.NewClub{Name: name, Description: description, LeaderID: sess.UserID})
	if err != nil {
		return nil, err
	}

	o.log.Info(ctx, "club created", "club_id", c.ID, "leader_id", sess.UserID)
	return c, nil
}

// CreateFestival creates a festival for a club the signed-in user leads and
// makes that user its organizer.
func (o *organizerService) CreateFestival(ctx context.Context, in FestivalInput) (*models.Festival, error) {
	sess, err := o.leader(ctx)
	if err != nil {
		return nil, err
	}

	club, err := o.store.GetClubByID(ctx, in.ClubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, fmt.Errorf("club %q: %w", in.ClubID, common.ErrNotFound)
	}
	if club.LeaderID != sess.UserID {
		return nil, fmt.Errorf("club %q is led by someone else: %w", in.ClubID, common.ErrForbidden)
	}

	poster, err := filex.EncodeDataURL(in.PosterPath)
	if err != nil {
		return nil, fmt.Errorf("poster: %w", err)
	}
	brochure, err := filex.EncodeDataURL(in.BrochurePath)
	if err != nil {
		return nil, fmt.Errorf("brochure: %w", err)
	}

	f, err := o.store.CreateFestival(ctx, models.NewFestival{
		Name:        in.Name,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Location:    in.Location,
		OrganizerID: sess.UserID,
		ClubID:      club.ID,
		Poster:      poster,
		Brochure:    brochure,
	})
	if err != nil {
		return nil, err
	}

	o.log.Info(ctx, "festival created", "festival_id", f.ID, "club_id", club.ID)
	return f, nil
}

// AddSubEvent requires at least one place.
func (o *organizerService) AddSubEvent(ctx context.Context, festivalID string, in models.NewSubEvent) (*models.SubEvent, error) {
	if _, _, err := o.organizedFestival(ctx, festivalID); err != nil {
		return nil, err
	}
	if in.MaxParticipants < 1 {
		return nil, fmt.Errorf("%w: maximum participants must be at least 1", common.ErrValidation)
	}

	in.FestivalID = festivalID
	return o.store.CreateSubEvent(ctx, in)
}

// AddTask assigns the task to the organizer when no assignee is given and
// defaults the status to pending.
func (o *organizerService) AddTask(ctx context.Context, festivalID string, in models.NewTask) (*models.Task, error) {
	sess, _, err := o.organizedFestival(ctx, festivalID)
	if err != nil {
		return nil, err
	}

	in.FestivalID = festivalID
	if in.AssigneeID == "" {
		in.AssigneeID = sess.UserID
	}
	if in.Status == "" {
		in.Status = models.TaskPending
	}
	return o.store.CreateTask(ctx, in)
}

func (o *organizerService) AddExpense(ctx context.Context, festivalID string, in models.NewExpense) (*models.Expense, error) {
	sess, _, err := o.organizedFestival(ctx, festivalID)
	if err != nil {
		return nil, err
	}

	in.FestivalID = festivalID
	in.CreatedBy = sess.UserID
	return o.store.CreateExpense(ctx, in)
}
