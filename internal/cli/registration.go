package cli

import "context"

func (a *App) RegisterFestival(ctx context.Context, festivalID string) error {
	if _, err := a.registration.RegisterForFestival(a.withSession(ctx), festivalID); err != nil {
		return err
	}
	a.println("Registered for the festival.")
	return nil
}

func (a *App) JoinSubEvent(ctx context.Context, subEventID string) error {
	ctx = a.withSession(ctx)
	if _, err := a.registration.RegisterForSubEvent(ctx, subEventID); err != nil {
		return err
	}

	remaining, err := a.registration.RemainingCapacity(ctx, subEventID)
	if err != nil {
		return err
	}
	a.printf("Registered. %d spots remaining.\n", remaining)
	return nil
}
