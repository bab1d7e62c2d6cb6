package usecase

import (
	"context"
	"fmt"
	"strings"

	"date-mathematics/internal/calculator"
	"date-mathematics/pkg/datemath"
)

// Diff measures the distance from the start date-time to the end date
// (taken at midnight) in the requested unit.
func (uc *implUseCase) Diff(ctx context.Context, input calculator.DiffInput) (calculator.DiffOutput, error) {
	if strings.TrimSpace(input.StartDate) == "" {
		return calculator.DiffOutput{}, calculator.ErrMissingStartDate
	}
	if strings.TrimSpace(input.EndDate) == "" {
		return calculator.DiffOutput{}, calculator.ErrMissingEndDate
	}

	start, err := uc.parser.ParseDateTime(input.StartDate, input.StartTime)
	if err != nil {
		return calculator.DiffOutput{}, err
	}
	end, err := uc.parser.ParseDateTime(input.EndDate, "")
	if err != nil {
		return calculator.DiffOutput{}, err
	}

	var out calculator.DiffOutput
	switch input.Unit {
	case calculator.UnitDays, "":
		out.Value = datemath.DifferenceInDays(end, start)
		out.Formatted = fmt.Sprintf("%d Days", out.Value)
	case calculator.UnitMonths:
		out.Value = datemath.DifferenceInMonths(end, start)
		out.Formatted = fmt.Sprintf("%d Months", out.Value)
	case calculator.UnitYears:
		out.Duration = datemath.IntervalToDuration(start, end)
		out.Value = out.Duration.Years
		out.Formatted = fmt.Sprintf("%d Years, %d Months, %d Days", out.Duration.Years, out.Duration.Months, out.Duration.Days)
	case calculator.UnitBusinessDays:
		n, err := datemath.BusinessDaysBetween(start, end)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Diff BusinessDaysBetween: %v", err)
			return calculator.DiffOutput{}, err
		}
		out.Value = n
		out.Formatted = fmt.Sprintf("%d Business Days", n)
	default:
		return calculator.DiffOutput{}, fmt.Errorf("%w: %q", calculator.ErrUnknownUnit, input.Unit)
	}

	return out, nil
}
