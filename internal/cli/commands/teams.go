package commands

import (
	"github.com/spf13/cobra"
)

// TeamsCommand prints the registry the dashboard would probe
func TeamsCommand(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "Print the parsed team registry as JSON",
		Long: `Print the team registry exactly as the dashboard sees it. A malformed
TEAMS_JSON prints an empty list; run "teamboard probe" or GET /diag for the
parse error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mon, err := rt.Monitor()
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), mon.Teams())
		},
	}
}
