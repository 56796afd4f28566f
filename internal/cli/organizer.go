package cli

import (
	"context"

	"github.com/dmitrijs2005/coordinet/internal/models"
	"github.com/dmitrijs2005/coordinet/internal/services"
)

// field is one prompted text value.
type field struct {
	label string
	dst   *string
}

// askAll prompts for each field in turn.
func (a *App) askAll(fields ...field) error {
	for _, f := range fields {
		v, err := a.prompt(f.label)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}

func (a *App) AddClub(ctx context.Context) error {
	var name, description string
	if err := a.askAll(field{"Club name", &name}, field{"Description", &description}); err != nil {
		return err
	}

	c, err := a.organizer.CreateClub(a.withSession(ctx), name, description)
	if err != nil {
		return err
	}
	a.println("Club created:", c.ID)
	return nil
}

func (a *App) AddFestival(ctx context.Context) error {
	var in services.FestivalInput
	err := a.askAll(
		field{"Club id", &in.ClubID},
		field{"Festival name", &in.Name},
		field{"Description", &in.Description},
		field{"Start date (YYYY-MM-DD)", &in.StartDate},
		field{"End date (YYYY-MM-DD)", &in.EndDate},
		field{"Location", &in.Location},
		field{"Poster file (empty for none)", &in.PosterPath},
		field{"Brochure file (empty for none)", &in.BrochurePath},
	)
	if err != nil {
		return err
	}

	f, err := a.organizer.CreateFestival(a.withSession(ctx), in)
	if err != nil {
		return err
	}
	a.println("Festival created:", f.ID)
	return nil
}

func (a *App) AddSubEvent(ctx context.Context, festivalID string) error {
	var in models.NewSubEvent
	err := a.askAll(
		field{"Sub-event name", &in.Name},
		field{"Description", &in.Description},
		field{"Start date (YYYY-MM-DD)", &in.StartDate},
		field{"Start time (HH:MM)", &in.StartTime},
		field{"End date (YYYY-MM-DD)", &in.EndDate},
		field{"End time (HH:MM)", &in.EndTime},
		field{"Location", &in.Location},
	)
	if err != nil {
		return err
	}
	if in.MaxParticipants, err = a.promptInt("Maximum participants"); err != nil {
		return err
	}

	e, err := a.organizer.AddSubEvent(a.withSession(ctx), festivalID, in)
	if err != nil {
		return err
	}
	a.println("Sub-event created:", e.ID)
	return nil
}

func (a *App) AddTask(ctx context.Context, festivalID string) error {
	var in models.NewTask
	var status string
	err := a.askAll(
		field{"Task title", &in.Title},
		field{"Description", &in.Description},
		field{"Status (pending, in_progress, completed; empty for pending)", &status},
		field{"Assignee id (empty for yourself)", &in.AssigneeID},
		field{"Sub-event id (empty for the whole festival)", &in.SubEventID},
		field{"Due date (YYYY-MM-DD)", &in.DueDate},
	)
	if err != nil {
		return err
	}
	in.Status = models.TaskStatus(status)

	t, err := a.organizer.AddTask(a.withSession(ctx), festivalID, in)
	if err != nil {
		return err
	}
	a.println("Task created:", t.ID)
	return nil
}

func (a *App) AddExpense(ctx context.Context, festivalID string) error {
	var in models.NewExpense
	if err := a.askAll(field{"Expense title", &in.Title}); err != nil {
		return err
	}
	amount, err := a.promptAmount("Amount")
	if err != nil {
		return err
	}
	in.Amount = amount
	err = a.askAll(
		field{"Category", &in.Category},
		field{"Description", &in.Description},
		field{"Date (YYYY-MM-DD)", &in.Date},
		field{"Sub-event id (empty for the whole festival)", &in.SubEventID},
	)
	if err != nil {
		return err
	}

	e, err := a.organizer.AddExpense(a.withSession(ctx), festivalID, in)
	if err != nil {
		return err
	}
	a.println("Expense recorded:", e.ID)
	return nil
}
