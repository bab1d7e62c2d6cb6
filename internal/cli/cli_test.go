package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"date-mathematics/internal/calculator"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := NewRootCmd(&out)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs(append(args, "--timezone", "UTC"))
	err := c.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestAddCommand(t *testing.T) {
	got, err := run(t, "add", "--start", "2024-05-03", "--amount", "1", "--exclude-weekends")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-06 12:00 AM", got)
}

func TestSubtractCommand(t *testing.T) {
	got, err := run(t, "subtract", "-s", "2024-03-31", "-t", "09:15", "-n", "1", "-u", "months", "-f", "dd-MMM-yyyy")
	require.NoError(t, err)
	assert.Equal(t, "29-Feb-2024 09:15 AM", got)
}

func TestDiffCommand(t *testing.T) {
	got, err := run(t, "diff", "--start", "2024-01-01", "--end", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "60 Days", got)

	got, err = run(t, "diff", "--start", "2024-01-01", "--end", "2024-03-01", "--unit", "years")
	require.NoError(t, err)
	assert.Equal(t, "0 Years, 2 Months, 0 Days", got)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"Add without start", []string{"add", "--amount", "1"}, calculator.ErrMissingStartDate},
		{"Add non numeric", []string{"add", "--start", "2024-05-03", "--amount", "many"}, calculator.ErrNonNumericAmount},
		{"Diff without end", []string{"diff", "--start", "2024-05-03"}, calculator.ErrMissingEndDate},
		{"Diff bad unit", []string{"diff", "--start", "2024-05-03", "--end", "2024-06-03", "--unit", "weeks"}, calculator.ErrUnknownUnit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestBadTimezone(t *testing.T) {
	var out bytes.Buffer
	c := NewRootCmd(&out)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{"add", "--start", "2024-05-03", "--timezone", "Mars/Olympus"})
	assert.Error(t, c.Execute())
}
