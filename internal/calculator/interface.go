package calculator

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Shift adds or subtracts an amount of days, months or years.
	Shift(ctx context.Context, input ShiftInput) (ShiftOutput, error)
	// Diff reports the distance between two dates in the requested unit.
	Diff(ctx context.Context, input DiffInput) (DiffOutput, error)
	// Dispatch applies one form action and returns the next form state.
	// Invalid input leaves the state untouched.
	Dispatch(ctx context.Context, state FormState, action Action) FormState
}
