package commands

import (
	"fmt"
	"runtime"

	"teamboard/internal/constants"

	"github.com/spf13/cobra"
)

// VersionCommand prints the build version
func VersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s %s/%s)\n",
				constants.AppName, constants.AppVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
