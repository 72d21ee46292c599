package commands

import (
	"teamboard/internal/validation"

	"github.com/spf13/cobra"
)

// ServeCommand creates the serve command
func ServeCommand(rt Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP server",
		Long: `Run the dashboard HTTP server. The server probes every configured team
service on demand, keeps a rolling uptime history and serves the JSON,
Prometheus, HTML and WebSocket views until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rt.Config()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("port") {
				port, _ := cmd.Flags().GetInt("port")
				if err := validation.PortNumber("port", port); err != nil {
					return err
				}
				cfg.Port = port
			}
			if cmd.Flags().Changed("host") {
				cfg.Host, _ = cmd.Flags().GetString("host")
			}

			return rt.Serve(cmd.Context())
		},
	}

	cmd.Flags().IntP("port", "p", 0, "Port to listen on (overrides PORT)")
	cmd.Flags().String("host", "", "Address to bind (overrides HOST)")
	return cmd
}
