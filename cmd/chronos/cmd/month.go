package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newMonthCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "month <value>",
		Short: "Lists every day of the month containing a value",
		Long: `Each day starts at 00:00 in the value's zone. The first entry is the
start of the month and the last entry is the end of the month (23:59).`,
		Example: `  chronos month 2024-02-15 10:00
  chronos month "2024-03-10 12:00" --zone America/Los_Angeles`,
		Args: valueArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run("month", func() error {
				d, err := a.parseValue(args)
				if err != nil {
					return err
				}
				days, err := d.GetDaysOfMonth()
				if err != nil {
					return err
				}

				rows := make([][]string, 0, len(days))
				weekend := make(map[int]bool)
				for i, day := range days {
					wd := day.Time().Weekday()
					weekend[i] = wd == time.Saturday || wd == time.Sunday
					rows = append(rows, []string{
						strconv.Itoa(i + 1),
						day.DateValue(),
						wd.String()[:3],
						day.TimeValue(),
						day.ISOString(),
					})
				}

				if a.out.styled {
					fmt.Fprintln(a.out.w, TitleStyle.Render(fmt.Sprintf("%s %d (%s)", d.Time().Month(), d.Time().Year(), d.Zone())))
				}
				a.out.grid([]string{"#", "Date", "Day", "Time", "ISO"}, rows, func(r int) bool { return weekend[r] })
				return nil
			})
		},
	}
}
