package cli

import (
	"io"

	"github.com/spf13/cobra"

	"date-mathematics/internal/calculator"
	calculatorUC "date-mathematics/internal/calculator/usecase"
	"date-mathematics/pkg/datemath"
	"date-mathematics/pkg/log"
)

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	timezone string
	verbose  bool
}

// NewRootCmd builds the datemath command tree. Results are written to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	c := &cobra.Command{
		Use:           "datemath",
		Short:         "Date arithmetic and date differences",
		Long:          "Add or subtract days, months or years (optionally skipping weekends) and measure the distance between two dates.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Usage()
		},
	}
	c.SetOut(out)

	c.PersistentFlags().StringVar(&opts.timezone, "timezone", "Local", "IANA timezone the dates are interpreted in")
	c.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log calculation details")

	c.AddCommand(newShiftCmd(opts, calculator.Forward))
	c.AddCommand(newShiftCmd(opts, calculator.Backward))
	c.AddCommand(newDiffCmd(opts))
	c.AddCommand(newServeCmd())

	return c
}

// Execute runs the command tree against os.Args.
func Execute(out io.Writer) error {
	return NewRootCmd(out).Execute()
}

func (o *rootOptions) logger() log.Logger {
	if !o.verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{
		Level:    "debug",
		Mode:     log.ModeDevelopment,
		Encoding: log.EncodingConsole,
	})
}

func (o *rootOptions) useCase() (calculator.UseCase, error) {
	parser, err := datemath.NewParser(o.timezone)
	if err != nil {
		return nil, err
	}
	return calculatorUC.New(o.logger(), parser, calculatorUC.Config{}), nil
}
