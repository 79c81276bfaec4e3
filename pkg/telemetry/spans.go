package telemetry

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/otlp"
)

// BuildSpan records a finished INTERNAL span on tracer, as a child of the span active in ctx.
// Absent attribute values are skipped, events are added in order and the status is always OK.
func BuildSpan(
	ctx context.Context, tracer trace.Tracer, name string, attrs otlp.Attrs, events ...otlp.EventSpec,
) trace.Span {
	_, span := tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	span.SetAttributes(Attributes(attrs)...)
	for _, e := range events {
		span.AddEvent(e.Name, trace.WithAttributes(Attributes(e.Attrs)...))
	}
	span.SetStatus(codes.Ok, "")
	return span
}

// Attributes converts an attribute record into SDK attributes, dropping absent values.
func Attributes(attrs otlp.Attrs) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(attrs))
	for _, a := range attrs {
		v, ok := otlp.EncodeValue(a.Value)
		if !ok {
			continue
		}
		out = append(out, attribute.KeyValue{Key: attribute.Key(a.Key), Value: attributeValue(v)})
	}
	return out
}

func attributeValue(v otlp.AnyValue) attribute.Value {
	switch {
	case v.StringValue != nil:
		return attribute.StringValue(*v.StringValue)
	case v.BoolValue != nil:
		return attribute.BoolValue(*v.BoolValue)
	case v.IntValue != nil:
		return attribute.Int64Value(int64(*v.IntValue))
	case v.DoubleValue != nil:
		return attribute.Float64Value(float64(*v.DoubleValue))
	case v.ArrayValue != nil:
		return sliceValue(v.ArrayValue.Values)
	}
	return attribute.StringValue("")
}

// sliceValue picks the narrowest typed slice for values. Integers and doubles together become a
// float slice; any other mix, or nested arrays, becomes a slice of element strings.
func sliceValue(values []otlp.AnyValue) attribute.Value {
	var strs, bools, ints, doubles, other int
	for _, v := range values {
		switch {
		case v.StringValue != nil:
			strs++
		case v.BoolValue != nil:
			bools++
		case v.IntValue != nil:
			ints++
		case v.DoubleValue != nil:
			doubles++
		default:
			other++
		}
	}

	n := len(values)
	switch {
	case n == 0 || strs == n:
		return attribute.StringSliceValue(elementStrings(values))
	case bools == n:
		out := make([]bool, 0, n)
		for _, v := range values {
			out = append(out, *v.BoolValue)
		}
		return attribute.BoolSliceValue(out)
	case ints == n:
		out := make([]int64, 0, n)
		for _, v := range values {
			out = append(out, int64(*v.IntValue))
		}
		return attribute.Int64SliceValue(out)
	case ints+doubles == n:
		out := make([]float64, 0, n)
		for _, v := range values {
			if v.IntValue != nil {
				out = append(out, float64(*v.IntValue))
			} else {
				out = append(out, float64(*v.DoubleValue))
			}
		}
		return attribute.Float64SliceValue(out)
	}
	return attribute.StringSliceValue(elementStrings(values))
}

func elementStrings(values []otlp.AnyValue) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, elementString(v))
	}
	return out
}

func elementString(v otlp.AnyValue) string {
	switch {
	case v.StringValue != nil:
		return *v.StringValue
	case v.BoolValue != nil:
		return strconv.FormatBool(*v.BoolValue)
	case v.IntValue != nil:
		return strconv.FormatInt(int64(*v.IntValue), 10)
	case v.DoubleValue != nil:
		return strconv.FormatFloat(float64(*v.DoubleValue), 'g', -1, 64)
	case v.ArrayValue != nil:
		return attributeValue(v).Emit()
	}
	return ""
}
