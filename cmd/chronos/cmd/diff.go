package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/chronos/foundation/utils/timex"
	"github.com/msto63/chronos/pkg/datetime"
)

func newDiffCommand(a *app) *cobra.Command {
	var otherZone string

	cmd := &cobra.Command{
		Use:   "diff <value> <value>",
		Short: "Shows the distance between two values",
		Example: `  chronos diff "2024-03-09 10:00" "2024-03-10 10:00" --zone America/Los_Angeles
  chronos diff 2024-01-01 10:00 2024-01-02 19:00 --other-zone Asia/Tokyo`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 && len(args) != 4 {
				return fmt.Errorf("diff expects two values, quoted or as date and time pairs")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			first, second := args[:1], args[1:]
			if len(args) == 4 {
				first, second = args[:2], args[2:]
			}
			return a.run("diff", func() error {
				left, err := a.parseValue(first)
				if err != nil {
					return err
				}
				zone := a.zone
				if otherZone != "" {
					zone = otherZone
				}
				right, err := datetime.New(strings.Join(second, " "), zone, a.options()...)
				if err != nil {
					return err
				}

				elapsed := left.TimeDiff(right)
				a.out.panel("Diff", []row{
					{key: "first", value: left.String()},
					{key: "second", value: right.String()},
					{key: "order", value: order(left, right)},
					{key: "elapsed", value: timex.FormatDurationCompact(elapsed.Std())},
					{key: "milliseconds", value: elapsed.Millis().String()},
					{key: "minutes", value: strconv.FormatFloat(elapsed.ToMinutes(), 'f', -1, 64)},
					{key: "hours", value: strconv.FormatFloat(elapsed.ToHours(true), 'f', -1, 64)},
					{key: "days", value: strconv.Itoa(left.DaysDiff(right))},
					{key: "same day", value: strconv.FormatBool(left.IsSameDay(right))},
				})
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&otherZone, "other-zone", "", "Zone of the second value (default: --zone)")
	return cmd
}

func order(a, b *datetime.DateTime) string {
	switch {
	case a.IsBefore(b):
		return "first is earlier"
	case a.IsAfter(b):
		return "first is later"
	default:
		return "same instant"
	}
}
