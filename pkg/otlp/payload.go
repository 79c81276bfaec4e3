package otlp

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/semconv"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/version"
)

// ExportTraceServiceRequest is the body POSTed to an OTLP/HTTP traces endpoint.
// https://github.com/open-telemetry/opentelemetry-proto/blob/v1.3.2/opentelemetry/proto/collector/trace/v1/trace_service.proto#L36
type ExportTraceServiceRequest struct {
	ResourceSpans []ResourceSpans `json:"resourceSpans"`
}

// ResourceSpans corresponds to ResourceSpans.
type ResourceSpans struct {
	Resource   Resource     `json:"resource"`
	ScopeSpans []ScopeSpans `json:"scopeSpans"`
}

// Resource corresponds to Resource.
type Resource struct {
	Attributes []KeyValue `json:"attributes"`
}

// ScopeSpans corresponds to ScopeSpans.
type ScopeSpans struct {
	Scope Scope  `json:"scope"`
	Spans []Span `json:"spans"`
}

// Scope corresponds to InstrumentationScope.
type Scope struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ExporterScope identifies this exporter in every payload.
func ExporterScope() Scope {
	return Scope{Name: semconv.InstrumentationName, Version: version.Release()}
}

// NewExportRequest wraps spans, in order, in a single resource and scope.
func NewExportRequest(spans []Span, serviceName string) ExportTraceServiceRequest {
	if spans == nil {
		spans = []Span{}
	}
	resourceAttrs := Attrs{{Key: semconv.ServiceNameKey, Value: serviceName}}
	return ExportTraceServiceRequest{
		ResourceSpans: []ResourceSpans{{
			Resource: Resource{Attributes: EncodeAttrs(resourceAttrs)},
			ScopeSpans: []ScopeSpans{{
				Scope: ExporterScope(),
				Spans: spans,
			}},
		}},
	}
}

// Serialize renders spans as an OTLP/HTTP JSON export request.
func Serialize(spans []Span, serviceName string) ([]byte, error) {
	body, err := json.Marshal(NewExportRequest(spans, serviceName))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal OTLP export request")
	}
	return body, nil
}
