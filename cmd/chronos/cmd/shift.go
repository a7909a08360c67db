package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/chronos/foundation/utils/timex"
	"github.com/msto63/chronos/pkg/datetime"
)

// newShiftCommand builds "add" or "subtract"; both share flags and output
func newShiftCommand(a *app, name string) *cobra.Command {
	var (
		by   string
		days int
	)

	direction, heading := "forward", "Add"
	if name == "subtract" {
		direction, heading = "backward", "Subtract"
	}

	cmd := &cobra.Command{
		Use:   name + " <value> [--by <duration>] [--days <n>]",
		Short: "Shifts a value " + direction + " by elapsed time or calendar days",
		Long: `--by shifts by elapsed time, so a DST transition changes the wall clock.
--days shifts by calendar days and keeps the wall clock.
Durations use Go syntax (90m, 1h30m) or "<n> <unit>" (2 hours, 3 days, 1 week).`,
		Example: "  chronos " + name + " 2024-03-10 00:00 --zone America/Los_Angeles --by 2h\n" +
			"  chronos " + name + " \"2024-02-28 18:45\" --days 2",
		Args: valueArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if by == "" && !cmd.Flags().Changed("days") {
				return usageError(name, "by", "either --by or --days is required")
			}
			return a.run(name, func() error {
				d, err := a.parseValue(args)
				if err != nil {
					return err
				}
				rows := []row{{key: "from", value: d.String()}}

				shifted := d
				if by != "" {
					std, err := timex.ParseDuration(by)
					if err != nil {
						return err
					}
					dur, err := datetime.FromMilliSeconds(float64(std.Milliseconds()))
					if err != nil {
						return err
					}
					if name == "subtract" {
						shifted, err = shifted.SubtractTime(dur)
					} else {
						shifted, err = shifted.AddTime(dur)
					}
					if err != nil {
						return err
					}
					rows = append(rows, row{key: "by", value: timex.FormatDurationCompact(dur.Std())})
				}
				if cmd.Flags().Changed("days") {
					if name == "subtract" {
						shifted, err = shifted.SubtractDays(days)
					} else {
						shifted, err = shifted.AddDays(days)
					}
					if err != nil {
						return err
					}
					rows = append(rows, row{key: "days", value: strconv.Itoa(days)})
				}

				elapsed := shifted.TimeDiff(d)
				rows = append(rows,
					row{key: "to", value: shifted.String()},
					row{key: "elapsed", value: timex.FormatDurationCompact(elapsed.Std())},
				)
				a.out.panel(heading, rows)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&by, "by", "", "Elapsed time to shift by")
	cmd.Flags().IntVar(&days, "days", 0, "Calendar days to shift by")
	return cmd
}
