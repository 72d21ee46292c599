package commands

import (
	"fmt"

	"teamboard/internal/errors"
	"teamboard/internal/metrics"

	"github.com/spf13/cobra"
)

// Output formats of the probe command
const (
	FormatJSON    = "json"
	FormatMetrics = "metrics"
)

// ProbeCommand runs one aggregation pass and prints it
func ProbeCommand(rt Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Probe every service once and print the result",
		Long: `Probe every service once, the same pass GET /status performs, and print
the snapshot as JSON or as Prometheus exposition text. History starts empty,
so uptime reflects this single pass.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			if format != FormatJSON && format != FormatMetrics {
				return errors.InvalidInput(fmt.Sprintf("unknown format %q (want json or metrics)", format))
			}

			mon, err := rt.Monitor()
			if err != nil {
				return err
			}
			snap := mon.Status(cmd.Context())

			if format == FormatJSON {
				return writeJSON(cmd.OutOrStdout(), snap)
			}

			m, err := rt.Metrics()
			if err != nil {
				return err
			}
			text, err := metrics.Render(m)
			if err != nil {
				return errors.InternalError("render metrics", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().StringP("format", "f", FormatJSON, "Output format: json or metrics")
	return cmd
}
