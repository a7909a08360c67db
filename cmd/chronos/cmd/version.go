package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/chronos/pkg/core/version"
)

var (
	Version   = version.CLI
	GitCommit = "development"
	BuildDate = "unknown"
)

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Shows the version",
		Run: func(cmd *cobra.Command, args []string) {
			a.out.panel("chronos v"+Version, []row{
				{key: "Version", value: "v" + Version},
				{key: "Library", value: "v" + version.ComponentVersion("datetime")},
				{key: "Serial", value: "v" + version.ComponentVersion("serial")},
				{key: "Git Commit", value: GitCommit},
				{key: "Build Date", value: BuildDate},
				{key: "Go Version", value: runtime.Version()},
				{key: "OS/Arch", value: fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
			})
		},
	}
}
