package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	configcmd "github.com/aip-otel-exporter/aip-otel-exporter/cmd/cli/config"
	"github.com/aip-otel-exporter/aip-otel-exporter/cmd/cli/record"
	"github.com/aip-otel-exporter/aip-otel-exporter/cmd/cli/serialize"
	"github.com/aip-otel-exporter/aip-otel-exporter/cmd/cli/version"
	"github.com/aip-otel-exporter/aip-otel-exporter/cmd/util"
	"github.com/aip-otel-exporter/aip-otel-exporter/cmd/util/flags"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/config"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/logger"
)

var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func NewRootCmd() *cobra.Command {
	logging := flags.NewDefaultLoggingFlagSettings()
	var configDir string

	RootCmd := &cobra.Command{
		Use:           "aip-otel",
		Short:         "Export AIP integrity checkpoints and AAP verification results as OpenTelemetry spans",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("log-mode") || cmd.Flags().Changed("log-level") {
				logger.ConfigureLogging(logging.Mode, logging.Level)
			}

			cfg, err := config.Load(configDir)
			if err != nil {
				return errors.Wrap(err, "failed to load configuration")
			}
			cmd.SetContext(util.WithConfig(cmd.Context(), cfg))
			return nil
		},
	}

	RootCmd.AddCommand(record.NewCmd())
	RootCmd.AddCommand(serialize.NewCmd())
	RootCmd.AddCommand(configcmd.NewCmd())
	RootCmd.AddCommand(version.NewCmd())

	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", defaultConfigDir(),
		`Directory holding config.yaml. Ignored when the file does not exist.`)
	RootCmd.PersistentFlags().AddFlagSet(flags.LoggingFlags(logging))
	return RootCmd
}

func defaultConfigDir() string {
	if dir := os.Getenv("AIP_OTEL_DIR"); dir != "" {
		return dir
	}
	return "."
}

func Execute() {
	rootCmd := NewRootCmd()

	// Ensure commands are able to stop cleanly if someone presses ctrl+c
	ctx, cancel := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer cancel()
	rootCmd.SetContext(ctx)

	// Use stdout, not stderr for cmd.Print output, so that
	// e.g. aip-otel serialize integrity --file f.json > payload.json works
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	if err := rootCmd.Execute(); err != nil {
		util.Fatal(rootCmd, err, 1)
	}
}
