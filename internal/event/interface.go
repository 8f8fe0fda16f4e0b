package event

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListEventsInput) (ListEventsOutput, error)
	Create(ctx context.Context, input CreateEventInput) (CreateEventOutput, error)
	Remove(ctx context.Context, id string) (RemoveEventOutput, error)
	StatsByMonth(ctx context.Context, input StatsByMonthInput) (StatsByMonthOutput, error)
	Clear(ctx context.Context) error
}
