package cli

import (
	"github.com/spf13/cobra"
)

// createRootCommand creates the root command with global flags
func createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "teamboard",
		Short: "Live status dashboard for team services",
		Long: `teamboard polls the health endpoint of every team service listed in
TEAMS_JSON, keeps a rolling window of samples per service and serves the
result as JSON, Prometheus metrics, an HTML dashboard and a WebSocket stream.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to showing help if no subcommand
			return cmd.Help()
		},
	}

	return rootCmd
}
