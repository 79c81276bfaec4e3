package record

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/multierr"

	"github.com/aip-otel-exporter/aip-otel-exporter/cmd/util"
	"github.com/aip-otel-exporter/aip-otel-exporter/cmd/util/flags"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/config"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/exporter"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/recorder"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/system"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/telemetry"
)

const (
	ModeOTLP = "otlp"
	ModeSDK  = "sdk"
)

type RecordOptions struct {
	File string
	Mode string
}

func NewRecordOptions() *RecordOptions {
	return &RecordOptions{
		File: "-",
		Mode: ModeOTLP,
	}
}

func NewCmd() *cobra.Command {
	o := NewRecordOptions()

	recordCmd := &cobra.Command{
		Use:   "record {integrity|verification|coherence|drift}",
		Short: "Record an AIP or AAP result as a span and export it",
		Long: `Record an AIP or AAP result as a span and export it.

In otlp mode the span is posted as OTLP/HTTP JSON to the configured exporter endpoint.
In sdk mode it goes through the OpenTelemetry SDK pipeline configured in the Telemetry section,
together with the matching metrics.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd, args[0])
		},
	}
	recordCmd.Flags().StringVarP(&o.File, "file", "f", o.File, `JSON or YAML file holding the result, "-" for stdin`)
	recordCmd.Flags().StringVar(&o.Mode, "mode", o.Mode, `Export path: 'otlp','sdk'`)

	exporterFlags := flags.ExporterFlags()
	if err := flags.BindExporterFlags(exporterFlags); err != nil {
		panic(fmt.Sprintf("DEVELOPER ERROR: %s", err))
	}
	recordCmd.Flags().AddFlagSet(exporterFlags)
	return recordCmd
}

func (o *RecordOptions) Run(cmd *cobra.Command, kindArg string) error {
	ctx := cmd.Context()

	kind, err := util.ParseKind(kindArg)
	if err != nil {
		return err
	}
	in, err := util.ReadInput(kind, o.File, cmd.InOrStdin())
	if err != nil {
		return err
	}

	cfg := util.GetConfig(ctx)
	switch o.Mode {
	case ModeOTLP:
		err = recordOTLP(ctx, cfg.Exporter, in)
	case ModeSDK:
		err = recordSDK(ctx, cfg.Telemetry, in)
	default:
		return fmt.Errorf("invalid mode %q: must be one of otlp, sdk", o.Mode)
	}
	if err != nil {
		return err
	}

	cmd.Printf("recorded %s span via %s\n", in.SpanSpec().Name, o.Mode)
	return nil
}

func recordOTLP(ctx context.Context, cfg config.ExporterConfig, in *util.Input) error {
	exp, err := exporter.New(cfg)
	if err != nil {
		return err
	}
	cm := system.NewCleanupManager()
	cm.RegisterCallback(exp.Shutdown)

	switch in.Kind {
	case util.KindIntegrity:
		exp.RecordIntegrityCheck(ctx, in.Integrity)
	case util.KindVerification:
		exp.RecordVerification(ctx, in.Verification)
	case util.KindCoherence:
		exp.RecordCoherence(ctx, in.Coherence)
	case util.KindDrift:
		exp.RecordDrift(ctx, in.Drift.Alerts, in.Drift.TracesAnalyzed)
	}

	log.Ctx(ctx).Debug().Str("endpoint", cfg.Endpoint).Int("spans", exp.Len()).Msg("flushing OTLP spans")
	return errors.Wrap(cm.Cleanup(ctx), "failed to export span")
}

func recordSDK(ctx context.Context, cfg config.TelemetryConfig, in *util.Input) error {
	cfg.Enabled = true
	if err := telemetry.Setup(ctx, cfg); err != nil {
		return errors.Wrap(err, "failed to set up OpenTelemetry SDK")
	}
	cm := system.NewCleanupManager()
	cm.RegisterCallback(telemetry.Cleanup)

	metrics, err := recorder.NewMetricsFromProvider(otel.GetMeterProvider())
	if err != nil {
		return multierr.Append(err, cm.Cleanup(ctx))
	}
	rec := recorder.New(recorder.WithMetrics(metrics))

	switch in.Kind {
	case util.KindIntegrity:
		rec.RecordIntegrityCheck(ctx, in.Integrity)
	case util.KindVerification:
		rec.RecordVerification(ctx, in.Verification)
	case util.KindCoherence:
		rec.RecordCoherence(ctx, in.Coherence)
	case util.KindDrift:
		rec.RecordDrift(ctx, in.Drift.Alerts, in.Drift.TracesAnalyzed)
	}
	return errors.Wrap(cm.Cleanup(ctx), "failed to export telemetry")
}
