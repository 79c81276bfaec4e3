package config

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aip-otel-exporter/aip-otel-exporter/cmd/util"
)

func newShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration.",
		Args:  cobra.NoArgs,
		RunE:  showConfig,
	}
	return showCmd
}

func showConfig(cmd *cobra.Command, _ []string) error {
	currentConfig := util.GetConfig(cmd.Context())
	if currentConfig.Exporter.Authorization != "" {
		currentConfig.Exporter.Authorization = redacted
	}

	cfgbytes, err := yaml.Marshal(currentConfig)
	if err != nil {
		return err
	}
	cmd.Print(string(cfgbytes))
	return nil
}

const redacted = "<redacted>"
