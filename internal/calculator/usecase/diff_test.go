package usecase

import (
	"context"
	"errors"
	"testing"

	"date-mathematics/internal/calculator"
)

func TestDiff(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     calculator.DiffInput
		want      string
		wantValue int
		wantErr   error
	}{
		{
			name:      "Days across leap February",
			input:     calculator.DiffInput{StartDate: "2024-01-01", EndDate: "2024-03-01", Unit: calculator.UnitDays},
			want:      "60 Days",
			wantValue: 60,
		},
		{
			name:      "Days with start time drops partial day",
			input:     calculator.DiffInput{StartDate: "2024-01-01", StartTime: "10:00", EndDate: "2024-03-01", Unit: calculator.UnitDays},
			want:      "59 Days",
			wantValue: 59,
		},
		{
			name:      "Negative days",
			input:     calculator.DiffInput{StartDate: "2024-03-01", EndDate: "2024-01-01", Unit: calculator.UnitDays},
			want:      "-60 Days",
			wantValue: -60,
		},
		{
			name:      "Months",
			input:     calculator.DiffInput{StartDate: "2024-01-01", EndDate: "2024-03-01", Unit: calculator.UnitMonths},
			want:      "2 Months",
			wantValue: 2,
		},
		{
			name:      "Years breakdown",
			input:     calculator.DiffInput{StartDate: "2020-05-10", EndDate: "2024-08-25", Unit: calculator.UnitYears},
			want:      "4 Years, 3 Months, 15 Days",
			wantValue: 4,
		},
		{
			name:  "Years breakdown zero components",
			input: calculator.DiffInput{StartDate: "2024-01-01", EndDate: "2024-03-01", Unit: calculator.UnitYears},
			want:  "0 Years, 2 Months, 0 Days",
		},
		{
			name:      "Business days",
			input:     calculator.DiffInput{StartDate: "2024-05-03", EndDate: "2024-05-17", Unit: calculator.UnitBusinessDays},
			want:      "10 Business Days",
			wantValue: 10,
		},
		{
			name:    "Missing start",
			input:   calculator.DiffInput{EndDate: "2024-03-01"},
			wantErr: calculator.ErrMissingStartDate,
		},
		{
			name:    "Missing end",
			input:   calculator.DiffInput{StartDate: "2024-03-01"},
			wantErr: calculator.ErrMissingEndDate,
		},
		{
			name:    "Unknown unit",
			input:   calculator.DiffInput{StartDate: "2024-01-01", EndDate: "2024-03-01", Unit: "weeks"},
			wantErr: calculator.ErrUnknownUnit,
		},
		{
			name:    "Invalid start time",
			input:   calculator.DiffInput{StartDate: "2024-01-01", StartTime: "noon", EndDate: "2024-03-01"},
			wantErr: calculator.ErrInvalidTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Diff(ctx, tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Diff() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Diff() unexpected error: %v", err)
			}
			if got.Formatted != tt.want {
				t.Errorf("Diff() got = %q, want %q", got.Formatted, tt.want)
			}
			if got.Value != tt.wantValue {
				t.Errorf("Diff() value = %d, want %d", got.Value, tt.wantValue)
			}
		})
	}
}
