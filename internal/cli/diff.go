package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"date-mathematics/internal/calculator"
)

type diffOptions struct {
	start string
	clock string
	end   string
	unit  string
}

func newDiffCmd(root *rootOptions) *cobra.Command {
	opts := &diffOptions{}

	c := &cobra.Command{
		Use:     "diff",
		Short:   "Measure the distance between two dates",
		Example: "datemath diff --start 2024-01-01 --end 2024-03-01 --unit years",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := root.useCase()
			if err != nil {
				return err
			}
			out, err := uc.Diff(cmd.Context(), calculator.DiffInput{
				StartDate: opts.start,
				StartTime: opts.clock,
				EndDate:   opts.end,
				Unit:      calculator.Unit(opts.unit),
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
	c.Flags().StringVarP(&opts.end, "end", "e", "", "end date (YYYY-MM-DD), taken at midnight")
	c.Flags().StringVarP(&opts.unit, "unit", "u", string(calculator.UnitDays), "days, months, years or business_days")

	return c
}
