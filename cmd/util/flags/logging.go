package flags

import (
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/logger"
)

type LoggingFlagSettings struct {
	Mode  logger.LogMode
	Level zerolog.Level
}

func NewDefaultLoggingFlagSettings() *LoggingFlagSettings {
	return &LoggingFlagSettings{
		Mode:  logger.LogModeDefault,
		Level: zerolog.InfoLevel,
	}
}

func LoggingFlags(settings *LoggingFlagSettings) *pflag.FlagSet {
	flags := pflag.NewFlagSet("Logging settings", pflag.ContinueOnError)
	flags.Var(&logModeValue{value: &settings.Mode}, "log-mode",
		`Log format: 'default','json','combined'`)
	flags.Var(&logLevelValue{value: &settings.Level}, "log-level",
		`Log level: 'trace','debug','info','warn','error'`)
	return flags
}

type logModeValue struct {
	value *logger.LogMode
}

func (v *logModeValue) String() string { return string(*v.value) }
func (v *logModeValue) Type() string   { return "log-mode" }

func (v *logModeValue) Set(s string) error {
	mode, err := logger.ParseLogMode(s)
	if err != nil {
		return err
	}
	*v.value = mode
	return nil
}

type logLevelValue struct {
	value *zerolog.Level
}

func (v *logLevelValue) String() string { return v.value.String() }
func (v *logLevelValue) Type() string   { return "log-level" }

func (v *logLevelValue) Set(s string) error {
	level, err := logger.ParseLogLevel(s)
	if err != nil {
		return err
	}
	*v.value = level
	return nil
}

var (
	_ pflag.Value = (*logModeValue)(nil)
	_ pflag.Value = (*logLevelValue)(nil)
)
