package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// UserCommands creates the user management commands
func UserCommands(rt Runtime) []*cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Register a dashboard user",
		Example: `  teamboard user create --email ana@uaemex.mx --password s3cret --name "Ana Pérez"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			name, _ := cmd.Flags().GetString("name")

			svc, err := rt.Auth(cmd.Context())
			if err != nil {
				return err
			}
			user, err := svc.Register(cmd.Context(), email, name, password)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created user %d (%s)\n", user.ID, user.Email)
			return nil
		},
	}
	createCmd.Flags().String("email", "", "Email address (required)")
	createCmd.Flags().String("password", "", "Password (required)")
	createCmd.Flags().String("name", "", "Full name")
	_ = createCmd.MarkFlagRequired("email")
	_ = createCmd.MarkFlagRequired("password")

	return []*cobra.Command{createCmd}
}
