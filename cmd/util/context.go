package util

import (
	"context"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/config"
)

type contextKey struct {
	name string
}

var ConfigKey = contextKey{name: "context key for storing the resolved configuration"}

func WithConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}

// GetConfig returns the configuration resolved by the root command, or the defaults when a
// command runs without it.
func GetConfig(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(ConfigKey).(config.Config); ok {
		return cfg
	}
	return config.Default
}
