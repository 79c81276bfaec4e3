package config

import "github.com/spf13/cobra"

func NewCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Interact with the aip-otel configuration.",
	}
	configCmd.AddCommand(newShowCmd())
	configCmd.AddCommand(newInitCmd())
	return configCmd
}
