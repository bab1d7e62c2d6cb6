package calculator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"date-mathematics/internal/calculator"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    int
		wantErr error
	}{
		{in: "5", want: 5},
		{in: " 12 ", want: 12},
		{in: "-3", want: -3},
		{in: "2.9", want: 2},
		{in: "-2.9", want: -2},
		{in: "1e2", want: 100},
		{in: "0", want: 0},
		{in: "", wantErr: calculator.ErrNonNumericAmount},
		{in: "abc", wantErr: calculator.ErrNonNumericAmount},
		{in: "NaN", wantErr: calculator.ErrNonNumericAmount},
		{in: "Inf", wantErr: calculator.ErrNonNumericAmount},
		{in: "1e12", wantErr: calculator.ErrAmountOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := calculator.ParseAmount(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
