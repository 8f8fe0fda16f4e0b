package usecase

import (
	"context"
	"strings"

	"calendar-schedule/internal/event"
)

// Remove deletes an event by id. Unknown ids succeed with Removed=false.
func (uc *implUseCase) Remove(ctx context.Context, id string) (event.RemoveEventOutput, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return event.RemoveEventOutput{}, nil
	}

	removed, err := uc.repo.DeleteEvent(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Remove DeleteEvent: %v", err)
		return event.RemoveEventOutput{}, err
	}
	if !removed {
		uc.l.Debugf(ctx, "uc.Remove: no event with id %s", id)
	}
	return event.RemoveEventOutput{Removed: removed}, nil
}

// Clear wipes every stored event.
func (uc *implUseCase) Clear(ctx context.Context) error {
	if err := uc.repo.ClearEvents(ctx); err != nil {
		uc.l.Errorf(ctx, "uc.Clear ClearEvents: %v", err)
		return err
	}
	uc.l.Warn(ctx, "uc.Clear: all events removed")
	return nil
}
