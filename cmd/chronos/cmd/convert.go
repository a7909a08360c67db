package cmd

import (
	"github.com/spf13/cobra"
)

func newConvertCommand(a *app) *cobra.Command {
	var targets []string

	cmd := &cobra.Command{
		Use:   "convert <value> --to <zone>",
		Short: "Shows the same instant in other zones",
		Example: `  chronos convert 2024-03-10 09:00 --zone America/Los_Angeles --to Europe/Berlin
  chronos convert "2024-01-01 10:00" --to Asia/Tokyo,UTC+5:45`,
		Args: valueArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(targets) == 0 {
				return usageError("convert", "to", "at least one target zone is required")
			}
			return a.run("convert", func() error {
				d, err := a.parseValue(args)
				if err != nil {
					return err
				}
				rows := []row{{key: d.Zone(), value: d.DateTimeString()}}
				for _, zone := range targets {
					converted, err := d.ConvertToZone(zone)
					if err != nil {
						return err
					}
					rows = append(rows, row{key: converted.Zone(), value: converted.DateTimeString()})
				}
				a.out.panel("Convert", rows)
				return nil
			})
		},
	}
	cmd.Flags().StringSliceVar(&targets, "to", nil, "Target zones (repeatable or comma separated)")
	return cmd
}
