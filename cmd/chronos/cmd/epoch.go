package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/pkg/datetime"
)

func newEpochCommand(a *app) *cobra.Command {
	var millis bool

	cmd := &cobra.Command{
		Use:   "epoch <number>",
		Short: "Builds a value from Unix seconds or milliseconds",
		Example: `  chronos epoch 1704103200 --zone Asia/Kolkata
  chronos epoch 1704103200999 --millis`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run("epoch", func() error {
				n, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return mdwerrors.InvalidFormat(mdwerrors.ModuleCLI, "epoch", "number", args[0], "integer")
				}

				var d *datetime.DateTime
				if millis {
					d, err = datetime.CreateFromMilliSecondsSinceEpoch(n, a.zone, a.options()...)
				} else {
					d, err = datetime.CreateFromTimestamp(n, a.zone, a.options()...)
				}
				if err != nil {
					return err
				}

				a.out.panel("Epoch", []row{
					{key: "value", value: d.String()},
					{key: "iso", value: d.ISOString()},
					{key: "timestamp", value: strconv.FormatInt(d.Timestamp(), 10)},
					{key: "date code", value: d.DateCode()},
					{key: "time code", value: d.TimeCode()},
				})
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&millis, "millis", false, "Interpret the number as milliseconds")
	return cmd
}
