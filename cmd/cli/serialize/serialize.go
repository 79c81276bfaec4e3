package serialize

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/aip-otel-exporter/aip-otel-exporter/cmd/util"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/otlp"
)

type SerializeOptions struct {
	File   string
	Pretty bool
}

func NewSerializeOptions() *SerializeOptions {
	return &SerializeOptions{File: "-"}
}

func NewCmd() *cobra.Command {
	o := NewSerializeOptions()

	serializeCmd := &cobra.Command{
		Use:   "serialize {integrity|verification|coherence|drift}",
		Short: "Print the OTLP/HTTP JSON export payload for an AIP or AAP result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd, args[0])
		},
	}
	serializeCmd.Flags().StringVarP(&o.File, "file", "f", o.File, `JSON or YAML file holding the result, "-" for stdin`)
	serializeCmd.Flags().BoolVar(&o.Pretty, "pretty", o.Pretty, `Indent the payload`)
	return serializeCmd
}

func (o *SerializeOptions) Run(cmd *cobra.Command, kindArg string) error {
	kind, err := util.ParseKind(kindArg)
	if err != nil {
		return err
	}
	in, err := util.ReadInput(kind, o.File, cmd.InOrStdin())
	if err != nil {
		return err
	}

	cfg := util.GetConfig(cmd.Context())
	span := in.SpanSpec().Standalone(otlp.NewSpanBuilder())
	payload, err := otlp.Serialize([]otlp.Span{span}, cfg.Exporter.ServiceName)
	if err != nil {
		return err
	}

	if o.Pretty {
		var out bytes.Buffer
		if err := json.Indent(&out, payload, "", "  "); err != nil {
			return err
		}
		payload = out.Bytes()
	}
	cmd.Println(string(payload))
	return nil
}
