package commands

import (
	"fmt"

	"teamboard/internal/errors"

	"github.com/spf13/cobra"
)

// MigrateCommand creates the migrate command
func MigrateCommand(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := rt.Database(cmd.Context())
			if err != nil {
				return err
			}
			if err := database.HealthCheck(cmd.Context()); err != nil {
				return errors.DatabaseConnectionError(err)
			}
			if err := database.Migrate(); err != nil {
				return errors.DatabaseMigrationError(err)
			}

			version, dirty, err := database.MigrationVersion()
			if err != nil {
				return errors.DatabaseMigrationError(err)
			}
			state := "clean"
			if dirty {
				state = "dirty"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schema at version %d (%s, %s)\n", version, database.Driver(), state)
			return nil
		},
	}
}
