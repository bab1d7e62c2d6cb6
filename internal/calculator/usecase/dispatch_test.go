package usecase

import (
	"context"
	"testing"

	"date-mathematics/internal/calculator"
)

func TestDispatch_AddSubtract(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	state := calculator.DefaultFormState()
	state.StartDate = "2024-05-03"
	state.Amount = "1"
	state.ExcludeWeekends = true

	added := uc.Dispatch(ctx, state, calculator.Action{Kind: calculator.ActionAdd})
	if added.ResultDate != "2024-05-06 12:00 AM" {
		t.Errorf("add: got %q", added.ResultDate)
	}

	subtracted := uc.Dispatch(ctx, state, calculator.Action{Kind: calculator.ActionSubtract})
	if subtracted.ResultDate != "2024-05-02 12:00 AM" {
		t.Errorf("subtract: got %q", subtracted.ResultDate)
	}

	if state.ResultDate != "" {
		t.Errorf("input state was mutated: %q", state.ResultDate)
	}
}

func TestDispatch_InvalidInputIsNoop(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	prior := calculator.DefaultFormState()
	prior.ResultDate = "2024-05-06 12:00 AM"
	prior.DateDiff = "60 Days"

	tests := []struct {
		name   string
		mutate func(s *calculator.FormState)
		action calculator.ActionKind
	}{
		{"Add with empty start date", func(s *calculator.FormState) { s.Amount = "3" }, calculator.ActionAdd},
		{"Subtract with empty start date", func(s *calculator.FormState) { s.Amount = "3" }, calculator.ActionSubtract},
		{"Add with non numeric amount", func(s *calculator.FormState) { s.StartDate = "2024-05-03"; s.Amount = "x" }, calculator.ActionAdd},
		{"Add with empty amount", func(s *calculator.FormState) { s.StartDate = "2024-05-03"; s.Amount = "" }, calculator.ActionAdd},
		{"Add with bad date", func(s *calculator.FormState) { s.StartDate = "2024-02-30"; s.Amount = "1" }, calculator.ActionAdd},
		{"Diff without end date", func(s *calculator.FormState) { s.StartDate = "2024-05-03" }, calculator.ActionDiff},
		{"Diff without start date", func(s *calculator.FormState) { s.EndDate = "2024-05-03" }, calculator.ActionDiff},
		{"Unknown action", func(s *calculator.FormState) {}, "explode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := prior
			tt.mutate(&state)
			got := uc.Dispatch(ctx, state, calculator.Action{Kind: tt.action})
			if got != state {
				t.Errorf("Dispatch() changed state:\n got  %+v\n want %+v", got, state)
			}
		})
	}
}

func TestDispatch_Diff(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	state := calculator.DefaultFormState().WithMode(calculator.ModeDiff)
	state.StartDate = "2024-01-01"
	state.EndDate = "2024-03-01"

	got := uc.Dispatch(ctx, state, calculator.Action{Kind: calculator.ActionDiff})
	if got.DateDiff != "60 Days" {
		t.Errorf("diff days: got %q", got.DateDiff)
	}

	state.DiffUnit = calculator.UnitYears
	got = uc.Dispatch(ctx, state, calculator.Action{Kind: calculator.ActionDiff})
	if got.DateDiff != "0 Years, 2 Months, 0 Days" {
		t.Errorf("diff years: got %q", got.DateDiff)
	}
}

func TestDispatch_SetModeResets(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	state := calculator.DefaultFormState()
	state.StartDate = "2024-05-03"
	state.Amount = "4"
	state.ResultDate = "2024-05-07 12:00 AM"

	got := uc.Dispatch(ctx, state, calculator.Action{Kind: calculator.ActionSetMode, Mode: calculator.ModeDiff})
	if got.Mode != calculator.ModeDiff {
		t.Errorf("mode: got %q", got.Mode)
	}
	if got.StartDate != "" || got.ResultDate != "" || got.Amount != "0" {
		t.Errorf("inputs not reset: %+v", got)
	}
}
