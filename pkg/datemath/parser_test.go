package datemath_test

import (
	"errors"
	"testing"
	"time"

	"date-mathematics/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	if _, err := datemath.NewParser("Asia/Ho_Chi_Minh"); err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	p, err := datemath.NewParser("")
	if err != nil {
		t.Fatalf("unexpected error for empty timezone: %v", err)
	}
	if p.Location() != time.Local {
		t.Errorf("expected time.Local for empty timezone, got %v", p.Location())
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if !errors.Is(err, datemath.ErrInvalidTimezone) {
		t.Fatalf("expected ErrInvalidTimezone, got %v", err)
	}
}

func TestParseDateTime(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	tests := []struct {
		name    string
		date    string
		clock   string
		want    time.Time
		wantErr error
	}{
		{
			name: "Date only is midnight",
			date: "2024-05-01",
			want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "Date and HH:MM",
			date:  "2024-05-01",
			clock: "15:30",
			want:  time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC),
		},
		{
			name:  "Date and HH:MM:SS",
			date:  "2024-05-01",
			clock: "07:05:09",
			want:  time.Date(2024, 5, 1, 7, 5, 9, 0, time.UTC),
		},
		{
			name:    "Impossible date",
			date:    "2023-02-29",
			wantErr: datemath.ErrInvalidDate,
		},
		{
			name:    "Garbage date",
			date:    "yesterday",
			wantErr: datemath.ErrInvalidDate,
		},
		{
			name:    "Garbage time",
			date:    "2024-05-01",
			clock:   "25:99",
			wantErr: datemath.ErrInvalidTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseDateTime(tt.date, tt.clock)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseDateTime() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateTime() unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDateTime() got = %v, want %v", got, tt.want)
			}
		})
	}
}
