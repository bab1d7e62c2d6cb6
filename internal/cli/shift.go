package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"date-mathematics/internal/calculator"
	"date-mathematics/pkg/datemath"
)

type shiftOptions struct {
	start           string
	clock           string
	amount          string
	unit            string
	excludeWeekends bool
	format          string
}

func newShiftCmd(root *rootOptions, direction calculator.Direction) *cobra.Command {
	opts := &shiftOptions{}

	use, short := "add", "Add an amount of days, months or years to a date"
	if direction == calculator.Backward {
		use, short = "subtract", "Subtract an amount of days, months or years from a date"
	}

	c := &cobra.Command{
		Use:     use,
		Short:   short,
		Example: fmt.Sprintf("datemath %s --start 2024-05-03 --amount 1 --exclude-weekends", use),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := root.useCase()
			if err != nil {
				return err
			}
			out, err := uc.Shift(cmd.Context(), calculator.ShiftInput{
				StartDate:       opts.start,
				StartTime:       opts.clock,
				Amount:          opts.amount,
				Unit:            calculator.Unit(opts.unit),
				ExcludeWeekends: opts.excludeWeekends,
				Direction:       direction,
				Format:          opts.format,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Formatted)
			return nil
		},
	}

	c.Flags().StringVarP(&opts.start, "start", "s", "", "start date (YYYY-MM-DD)")
	c.Flags().StringVarP(&opts.clock, "time", "t", "", "start time (HH:MM), midnight when omitted")
	c.Flags().StringVarP(&opts.amount, "amount", "n", "0", "amount to shift by; decimals are truncated")
	c.Flags().StringVarP(&opts.unit, "unit", "u", string(calculator.UnitDays), "days, months or years")
	c.Flags().BoolVar(&opts.excludeWeekends, "exclude-weekends", false, "count days as business days")
	c.Flags().StringVarP(&opts.format, "format", "f", datemath.DefaultDateFormat,
		"output date format: "+strings.Join(datemath.DateFormats, ", "))

	return c
}
