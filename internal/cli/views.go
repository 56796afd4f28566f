package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/coordinet/internal/models"
)

// Dashboard shows the leader or student overview depending on the role.
func (a *App) Dashboard(ctx context.Context) error {
	ctx = a.withSession(ctx)
	if a.session.Role == models.RoleClubLeader {
		return a.leaderDashboard(ctx)
	}
	return a.studentDashboard(ctx)
}

func (a *App) leaderDashboard(ctx context.Context) error {
	dash, err := a.dashboard.Leader(ctx)
	if err != nil {
		return err
	}

	a.println("Your clubs:")
	if len(dash.Clubs) == 0 {
		a.println("  none yet (addclub)")
	}
	for _, c := range dash.Clubs {
		a.printf("  %s  %s (%d members)\n", c.ID, c.Name, len(c.MemberIDs))
	}

	a.println("Your festivals:")
	if len(dash.Festivals) == 0 {
		a.println("  none yet (addfestival)")
	}
	for _, f := range dash.Festivals {
		club := "unknown club"
		if f.Club != nil {
			club = f.Club.Name
		}
		a.printf("  %s  %s, %s, %s to %s\n", f.Festival.ID, f.Festival.Name, club, f.Festival.StartDate, f.Festival.EndDate)
	}
	return nil
}

func (a *App) studentDashboard(ctx context.Context) error {
	dash, err := a.dashboard.Student(ctx)
	if err != nil {
		return err
	}

	a.println("Upcoming festivals:")
	if len(dash.Upcoming) == 0 {
		a.println("  none")
	}
	for _, f := range dash.Upcoming {
		a.printf("  %s  %s, %s to %s, %s\n", f.ID, f.Name, f.StartDate, f.EndDate, f.Location)
	}

	a.println("Your registrations:")
	if len(dash.RegisteredFestivals) == 0 {
		a.println("  none")
	}
	for _, f := range dash.RegisteredFestivals {
		a.printf("  festival %s  %s\n", f.ID, f.Name)
	}
	for _, e := range dash.RegisteredSubEvents {
		a.printf("  sub-event %s  %s, %s %s\n", e.ID, e.Name, e.StartDate, e.StartTime)
	}
	return nil
}

func (a *App) ShowFestival(ctx context.Context, id string) error {
	view, err := a.dashboard.Festival(a.withSession(ctx), id)
	if err != nil {
		return err
	}

	f := view.Festival
	club := "unknown club"
	if view.Club != nil {
		club = view.Club.Name
	}
	a.printf("%s (%s)\n", f.Name, club)
	a.printf("  %s to %s at %s\n", f.StartDate, f.EndDate, f.Location)
	if f.Description != "" {
		a.println(" ", f.Description)
	}
	a.printf("  poster: %s, brochure: %s\n", attachment(f.Poster), attachment(f.Brochure))

	switch {
	case view.IsOrganizer:
		a.println("  You organize this festival.")
	case view.IsRegistered:
		a.println("  You are registered.")
	default:
		a.println("  Not registered yet (register " + f.ID + ").")
	}

	a.println("Sub-events:")
	for _, e := range view.SubEvents {
		a.printf("  %s  %s, %s %s, max %d\n", e.ID, e.Name, e.StartDate, e.StartTime, e.MaxParticipants)
	}

	if !view.IsOrganizer {
		return nil
	}

	a.println("Tasks:")
	for _, t := range view.Tasks {
		a.printf("  %s  [%s] %s, due %s\n", t.ID, t.Status, t.Title, t.DueDate)
	}
	a.println("Expenses:")
	for _, e := range view.Expenses {
		a.printf("  %s  %s %.2f (%s)\n", e.ID, e.Title, e.Amount, e.Category)
	}
	a.printf("  total %.2f\n", view.TotalExpenses)
	return nil
}

func (a *App) ShowSubEvent(ctx context.Context, id string) error {
	view, err := a.dashboard.SubEvent(a.withSession(ctx), id)
	if err != nil {
		return err
	}

	e := view.SubEvent
	festival := "unknown festival"
	if view.Festival != nil {
		festival = view.Festival.Name
	}
	a.printf("%s, part of %s\n", e.Name, festival)
	a.printf("  %s %s to %s %s at %s\n", e.StartDate, e.StartTime, e.EndDate, e.EndTime, e.Location)
	a.printf("  %d / %d participants\n", len(view.Participations), e.MaxParticipants)

	switch {
	case view.Remaining <= 0:
		a.println("  Fully booked.")
	case view.Remaining <= 5:
		a.printf("  Only %d spots left!\n", view.Remaining)
	}
	if view.IsRegistered {
		a.println("  You are registered.")
	}

	if view.IsOrganizer {
		a.println("Participants:")
		for _, p := range view.Participations {
			a.printf("  %s  %s\n", p.UserName, p.RegistrationDate)
		}
	}
	return nil
}

func attachment(dataURL string) string {
	if dataURL == "" {
		return "none"
	}
	mediaType, _, _ := strings.Cut(strings.TrimPrefix(dataURL, "data:"), ";")
	return mediaType
}
