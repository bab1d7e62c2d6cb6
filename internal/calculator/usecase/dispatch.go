package usecase

import (
	"context"

	"date-mathematics/internal/calculator"
)

// Dispatch applies action to state and returns the resulting state.
// When a calculation cannot run (missing start or end date, non-numeric
// amount, unparsable input) the state is returned unchanged so the last
// displayed result stays on screen.
func (uc *implUseCase) Dispatch(ctx context.Context, state calculator.FormState, action calculator.Action) calculator.FormState {
	switch action.Kind {
	case calculator.ActionSetMode:
		return state.WithMode(action.Mode)

	case calculator.ActionAdd, calculator.ActionSubtract:
		direction := calculator.Forward
		if action.Kind == calculator.ActionSubtract {
			direction = calculator.Backward
		}
		out, err := uc.Shift(ctx, calculator.ShiftInput{
			StartDate:       state.StartDate,
			StartTime:       state.StartTime,
			Amount:          state.Amount,
			Unit:            state.OperationUnit,
			ExcludeWeekends: state.ExcludeWeekends,
			Direction:       direction,
			Format:          state.DateFormat,
		})
		if err != nil {
			uc.l.Debugf(ctx, "uc.Dispatch %s ignored: %v", action.Kind, err)
			return state
		}
		state.ResultDate = out.Formatted
		return state

	case calculator.ActionDiff:
		out, err := uc.Diff(ctx, calculator.DiffInput{
			StartDate: state.StartDate,
			StartTime: state.StartTime,
			EndDate:   state.EndDate,
			Unit:      state.DiffUnit,
		})
		if err != nil {
			uc.l.Debugf(ctx, "uc.Dispatch diff ignored: %v", err)
			return state
		}
		state.DateDiff = out.Formatted
		return state
	}

	uc.l.Warnf(ctx, "uc.Dispatch: unknown action %q", action.Kind)
	return state
}
