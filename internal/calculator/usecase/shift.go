package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"date-mathematics/internal/calculator"
	"date-mathematics/pkg/datemath"
)

// Shift adds or subtracts Amount units from the start date-time.
// A negative amount reverses the direction.
func (uc *implUseCase) Shift(ctx context.Context, input calculator.ShiftInput) (calculator.ShiftOutput, error) {
	if strings.TrimSpace(input.StartDate) == "" {
		return calculator.ShiftOutput{}, calculator.ErrMissingStartDate
	}

	amount, err := calculator.ParseAmount(input.Amount)
	if err != nil {
		return calculator.ShiftOutput{}, err
	}
	if amount > uc.maxAmount || amount < -uc.maxAmount {
		return calculator.ShiftOutput{}, fmt.Errorf("%w: |%d| > %d", calculator.ErrAmountOutOfRange, amount, uc.maxAmount)
	}

	origin, err := uc.parser.ParseDateTime(input.StartDate, input.StartTime)
	if err != nil {
		return calculator.ShiftOutput{}, err
	}

	direction := input.Direction
	if amount < 0 {
		direction = direction.Reverse()
		amount = -amount
	}

	result, err := uc.shift(origin, amount, input.Unit, input.ExcludeWeekends, direction)
	if err != nil {
		return calculator.ShiftOutput{}, err
	}

	formatted, err := uc.formatResult(result, input.Format)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Shift formatResult: %v", err)
		return calculator.ShiftOutput{}, err
	}

	uc.l.Debugf(ctx, "uc.Shift: origin=%s amount=%d unit=%s direction=%s business=%t result=%s",
		origin.Format(time.RFC3339), amount, input.Unit, direction, input.ExcludeWeekends, result.Format(time.RFC3339))

	return calculator.ShiftOutput{Result: result, Formatted: formatted}, nil
}

// shift routes one request to the business-day loop or a calendar primitive.
// The weekend flag only applies to days.
func (uc *implUseCase) shift(origin time.Time, amount int, unit calculator.Unit, excludeWeekends bool, direction calculator.Direction) (time.Time, error) {
	backward := direction == calculator.Backward
	switch unit {
	case calculator.UnitDays, "":
		if excludeWeekends {
			return calculator.ShiftBusinessDays(origin, amount, direction), nil
		}
		if backward {
			return datemath.SubDays(origin, amount), nil
		}
		return datemath.AddDays(origin, amount), nil
	case calculator.UnitMonths:
		if backward {
			return datemath.SubMonths(origin, amount), nil
		}
		return datemath.AddMonths(origin, amount), nil
	case calculator.UnitYears:
		if backward {
			return datemath.SubYears(origin, amount), nil
		}
		return datemath.AddYears(origin, amount), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", calculator.ErrUnknownUnit, unit)
}
