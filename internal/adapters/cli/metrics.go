package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/starship-engine/internal/adapters/metrics"
)

// NewMetricsCommand creates the metrics command with subcommands
func NewMetricsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Expose engine metrics to Prometheus",
	}

	cmd.AddCommand(newMetricsServeCommand())

	return cmd
}

// newMetricsServeCommand creates the metrics serve subcommand
func newMetricsServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the metrics endpoint until interrupted",
		Long: `Serve the Prometheus endpoint configured under metrics.* until interrupted.

Metrics must be enabled (SE_METRICS_ENABLED=true).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEngine()
			if err != nil {
				return err
			}
			defer e.close()

			if !metrics.IsEnabled() {
				return fmt.Errorf("metrics are disabled: set metrics.enabled or SE_METRICS_ENABLED=true")
			}

			server, err := metrics.NewServer(e.cfg.Metrics.Host, e.cfg.Metrics.Port, e.cfg.Metrics.Path)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(e.ctx(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			e.logger.Log("INFO", fmt.Sprintf("[Metrics] Serving on %s%s", e.cfg.Metrics.Address(), e.cfg.Metrics.Path), nil)
			return server.Run(ctx)
		},
	}
}
