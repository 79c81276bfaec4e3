package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/config"
)

const configFileName = "config.yaml"

func newInitCmd() *cobra.Command {
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the resolved configuration to config.yaml in the config directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return initCmd
}

func initConfig(cmd *cobra.Command, force bool) error {
	dir := cmd.Flag("config-dir").Value.String()
	path := filepath.Join(dir, configFileName)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file %s already exists, use --force to overwrite it", path)
	}

	if _, err := config.Init(dir); err != nil {
		return err
	}
	cmd.Printf("wrote %s\n", path)
	return nil
}
