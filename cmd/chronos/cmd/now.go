package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/chronos/pkg/datetime"
)

func newNowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "now [zone...]",
		Short: "Shows the current time in one or more zones",
		Example: `  chronos now
  chronos now Europe/Berlin America/New_York UTC+5:30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			zones := args
			if len(zones) == 0 {
				zones = []string{a.zone}
			}
			return a.run("now", func() error {
				rows := make([]row, 0, len(zones))
				for _, zone := range zones {
					d, err := datetime.Now(zone, a.options()...)
					if err != nil {
						return err
					}
					rows = append(rows, row{key: d.Zone(), value: d.DateTimeString() + "  " + d.ISOString()})
				}
				a.out.panel("Now", rows)
				return nil
			})
		},
	}
}
