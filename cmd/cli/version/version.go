package version

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/version"
)

const (
	textFormat = "text"
	jsonFormat = "json"
	yamlFormat = "yaml"
)

type VersionOptions struct {
	Format string
}

func NewVersionOptions() *VersionOptions {
	return &VersionOptions{Format: textFormat}
}

func NewCmd() *cobra.Command {
	oV := NewVersionOptions()

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of this binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return oV.Run(cmd)
		},
	}
	versionCmd.Flags().StringVar(&oV.Format, "output", oV.Format, `Output format: 'text','json','yaml'`)
	return versionCmd
}

func (oV *VersionOptions) Run(cmd *cobra.Command) error {
	info := version.Get()

	switch oV.Format {
	case textFormat:
		cmd.Printf("%s (commit %s, %s/%s)\n", info.GitVersion, commitOrUnknown(info.GitCommit), info.GOOS, info.GOARCH)
		return nil
	case jsonFormat:
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(info)
	case yamlFormat:
		b, err := yaml.Marshal(info)
		if err != nil {
			return errors.Wrap(err, "error marshaling version")
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	default:
		return fmt.Errorf("invalid format %q", oV.Format)
	}
}

func commitOrUnknown(commit string) string {
	if commit == "" {
		return "unknown"
	}
	return commit
}
