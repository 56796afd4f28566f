package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/coordinet/internal/common"
	"github.com/dmitrijs2005/coordinet/internal/datastore"
	"github.com/dmitrijs2005/coordinet/internal/models"
	"github.com/dmitrijs2005/coordinet/internal/session"
)

// FestivalWithClub pairs a festival with its club. Club is nil when the
// club has been deleted.
type FestivalWithClub struct {
	Festival models.Festival
	Club     *models.Club
}

type LeaderDashboard struct {
	Clubs     []models.Club
	Festivals []FestivalWithClub
}

type StudentDashboard struct {
	// Upcoming festivals have not ended yet, earliest start first.
	Upcoming            []models.Festival
	// RegisteredFestivals lists each festival once, in registration order.
	RegisteredFestivals []models.Festival
	RegisteredSubEvents []models.SubEvent
}

// FestivalView is everything shown on a festival page.
type FestivalView struct {
	Festival      models.Festival
	Club          *models.Club
	SubEvents     []models.SubEvent
	Tasks         []models.Task
	Expenses      []models.Expense
	TotalExpenses float64
	IsOrganizer   bool
	IsRegistered  bool
}

type SubEventView struct {
	SubEvent       models.SubEvent
	Festival       *models.Festival
	Participations []models.Participation
	Remaining      int
	IsOrganizer    bool
	IsRegistered   bool
}

// DashboardService assembles read-only views. Dangling references are
// tolerated: missing clubs come back as nil and missing festivals or
// sub-events are skipped.
type DashboardService interface {
	Leader(ctx context.Context) (*LeaderDashboard, error)
	Student(ctx context.Context) (*StudentDashboard, error)
	Festival(ctx context.Context, id string) (*FestivalView, error)
	SubEvent(ctx context.Context, id string) (*SubEventView, error)
}

type dashboardService struct {
	store *datastore.Store
	now   func() time.Time
}

func NewDashboardService(store *datastore.Store) DashboardService {
	return &dashboardService{store: store, now: time.Now}
}

// IsOrganizer reports whether sess organizes f.
func IsOrganizer(sess *models.Session, f *models.Festival) bool {
	return sess != nil && f != nil && f.OrganizerID == sess.UserID
}

func (d *dashboardService) Leader(ctx context.Context) (*LeaderDashboard, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}

	clubs, err := d.store.GetClubsByLeaderID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	festivals, err := d.store.GetFestivalsByOrganizerID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	dash := &LeaderDashboard{Clubs: clubs, Festivals: make([]FestivalWithClub, 0, len(festivals))}
	for _, f := range festivals {
		club, err := d.store.GetClubByID(ctx, f.ClubID)
		if err != nil {
			return nil, err
		}
		dash.Festivals = append(dash.Festivals, FestivalWithClub{Festival: f, Club: club})
	}
	return dash, nil
}

func (d *dashboardService) Student(ctx context.Context) (*StudentDashboard, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}

	all, err := d.store.GetAllFestivals(ctx)
	if err != nil {
		return nil, err
	}

	dash := &StudentDashboard{
		Upcoming:            upcoming(all, d.now()),
		RegisteredFestivals: []models.Festival{},
		RegisteredSubEvents: []models.SubEvent{},
	}

	mine, err := d.store.GetParticipationsByUserID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for _, p := range mine {
		if !seen[p.FestivalID] {
			seen[p.FestivalID] = true
			f, err := d.store.GetFestivalByID(ctx, p.FestivalID)
			if err != nil {
				return nil, err
			}
			if f != nil {
				dash.RegisteredFestivals = append(dash.RegisteredFestivals, *f)
			}
		}

		if p.SubEventID == "" {
			continue
		}
		e, err := d.store.GetSubEventByID(ctx, p.SubEventID)
		if err != nil {
			return nil, err
		}
		if e != nil {
			dash.RegisteredSubEvents = append(dash.RegisteredSubEvents, *e)
		}
	}
	return dash, nil
}

func (d *dashboardService) Festival(ctx context.Context, id string) (*FestivalView, error) {
	f, err := d.store.GetFestivalByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("festival %q: %w", id, common.ErrNotFound)
	}

	view := &FestivalView{Festival: *f}
	if view.Club, err = d.store.GetClubByID(ctx, f.ClubID); err != nil {
		return nil, err
	}
	if view.SubEvents, err = d.store.GetSubEventsByFestivalID(ctx, id); err != nil {
		return nil, err
	}
	if view.Tasks, err = d.store.GetTasksByFestivalID(ctx, id); err != nil {
		return nil, err
	}
	if view.Expenses, err = d.store.GetExpensesByFestivalID(ctx, id); err != nil {
		return nil, err
	}
	for _, e := range view.Expenses {
		view.TotalExpenses += e.Amount
	}

	sess := session.FromContext(ctx)
	if sess == nil {
		return view, nil
	}
	view.IsOrganizer = IsOrganizer(sess, f)

	mine, err := d.store.GetParticipationsByUserID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	view.IsRegistered = slices.ContainsFunc(mine, func(p models.Participation) bool { return p.FestivalID == id })
	return view, nil
}

func (d *dashboardService) SubEvent(ctx context.Context, id string) (*SubEventView, error) {
	e, err := d.store.GetSubEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("sub-event %q: %w", id, common.ErrNotFound)
	}

	view := &SubEventView{SubEvent: *e}
	if view.Festival, err = d.store.GetFestivalByID(ctx, e.FestivalID); err != nil {
		return nil, err
	}
	if view.Participations, err = d.store.GetParticipationsBySubEventID(ctx, id); err != nil {
		return nil, err
	}
	view.Remaining = e.MaxParticipants - len(view.Participations)

	if sess := session.FromContext(ctx); sess != nil {
		view.IsOrganizer = IsOrganizer(sess, view.Festival)
		view.IsRegistered = slices.ContainsFunc(view.Participations, func(p models.Participation) bool { return p.UserID == sess.UserID })
	}
	return view, nil
}

// upcoming keeps festivals whose end is not in the past, ordered by start.
// Festivals with unreadable dates are left out.
func upcoming(all []models.Festival, now time.Time) []models.Festival {
	type dated struct {
		f     models.Festival
		start time.Time
	}

	var kept []dated
	for _, f := range all {
		end, ok := parseDate(f.EndDate)
		if !ok || end.Before(now) {
			continue
		}
		start, ok := parseDate(f.StartDate)
		if !ok {
			continue
		}
		kept = append(kept, dated{f: f, start: start})
	}

	slices.SortStableFunc(kept, func(a, b dated) int { return a.start.Compare(b.start) })

	result := make([]models.Festival, 0, len(kept))
	for _, k := range kept {
		result = append(result, k.f)
	}
	return result
}

// parseDate accepts RFC 3339 timestamps and bare dates. Bare dates are
// midnight UTC.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04", time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
