package calculator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"date-mathematics/internal/calculator"
)

func TestParseAction(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    calculator.Action
		wantErr bool
	}{
		{in: "add", want: calculator.Action{Kind: calculator.ActionAdd}},
		{in: "subtract", want: calculator.Action{Kind: calculator.ActionSubtract}},
		{in: "diff", want: calculator.Action{Kind: calculator.ActionDiff}},
		{in: "mode:diff", want: calculator.Action{Kind: calculator.ActionSetMode, Mode: calculator.ModeDiff}},
		{in: "mode:addSub", want: calculator.Action{Kind: calculator.ActionSetMode, Mode: calculator.ModeAddSub}},
		{in: "mode:other", wantErr: true},
		{in: "multiply", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := calculator.ParseAction(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, calculator.ErrUnknownAction)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDirection(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]calculator.Direction{
		"":         calculator.Forward,
		"add":      calculator.Forward,
		"Forward":  calculator.Forward,
		"subtract": calculator.Backward,
		"backward": calculator.Backward,
	} {
		got, err := calculator.ParseDirection(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := calculator.ParseDirection("sideways")
	assert.ErrorIs(t, err, calculator.ErrUnknownDirection)

	assert.Equal(t, calculator.Backward, calculator.Forward.Reverse())
	assert.Equal(t, -1, calculator.Backward.Sign())
}

func TestFormStateWithMode(t *testing.T) {
	t.Parallel()
	s := calculator.DefaultFormState()
	s.StartDate = "2024-01-01"
	s.StartTime = "10:00"
	s.EndDate = "2024-03-01"
	s.Amount = "7"
	s.DateFormat = "dd/MM/yyyy"
	s.ExcludeWeekends = true
	s.ResultDate = "01/01/2024 10:00 AM"
	s.DateDiff = "60 Days"

	got := s.WithMode(calculator.ModeDiff)

	assert.Equal(t, calculator.ModeDiff, got.Mode)
	assert.Empty(t, got.StartDate)
	assert.Empty(t, got.StartTime)
	assert.Empty(t, got.EndDate)
	assert.Equal(t, "0", got.Amount)
	assert.Empty(t, got.ResultDate)
	assert.Empty(t, got.DateDiff)
	assert.Equal(t, "dd/MM/yyyy", got.DateFormat)
	assert.True(t, got.ExcludeWeekends)

	// The receiver is a copy.
	assert.Equal(t, "60 Days", s.DateDiff)
}
