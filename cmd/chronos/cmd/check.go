package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/pkg/datetime"
)

func newCheckCommand(a *app) *cobra.Command {
	var hours string

	cmd := &cobra.Command{
		Use:   "check <value> [--hours hhmm-hhmm]",
		Short: "Validates a value and zone",
		Long: `Runs the date, time, value and zone checks and reports which parts are
valid. With --hours it also reports whether the value's time of day falls in
the inclusive range. Exits non-zero when the value is invalid.`,
		Example: `  chronos check 2024-02-29 12:00 --zone Europe/Berlin
  chronos check "2024-05-05 10:00" --hours 0900-1700`,
		Args: valueArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run("check", func() error {
				value := strings.Join(args, " ")
				datePart, timePart, _ := strings.Cut(strings.TrimSpace(value), " ")

				rows := []row{
					{key: "date", value: a.out.check(datetime.ValidateDateFormat(datePart))},
					{key: "time", value: a.out.check(datetime.ValidateTimeFormat(timePart))},
					{key: "value", value: a.out.check(datetime.ValidateDateTimeFormat(value))},
					{key: "zone", value: a.out.check(datetime.ValidateTimeZone(a.zone))},
				}

				d, err := datetime.New(value, a.zone, a.options()...)
				if err != nil {
					a.out.panel("Check", rows)
					return err
				}
				rows = append(rows, row{key: "canonical", value: d.String()})

				if hours != "" {
					start, end, ok := strings.Cut(hours, "-")
					if !ok {
						return mdwerrors.InvalidFormat(mdwerrors.ModuleCLI, "check", "hours", hours, "hhmm-hhmm")
					}
					within, err := d.IsWithinTimeRange(start, end)
					if err != nil {
						return err
					}
					rows = append(rows, row{key: "within " + hours, value: strconv.FormatBool(within)})
				}

				a.out.panel("Check", rows)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&hours, "hours", "", "Inclusive time-of-day range as hhmm-hhmm")
	return cmd
}
