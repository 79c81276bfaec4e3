// Package otlp builds OTLP/HTTP JSON trace payloads without an OpenTelemetry SDK pipeline.
//
// Wire types follow the protobuf JSON mapping of opentelemetry-proto:
// https://github.com/open-telemetry/opentelemetry-proto/blob/main/docs/specification.md
package otlp

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Attr is one named value of an attribute record. A nil Value, including a typed nil pointer or
// a nil slice, means the attribute is absent.
type Attr struct {
	Key   string
	Value any
}

// Attrs is an insertion-ordered attribute record.
type Attrs []Attr

// Set appends key with value. Absent values are kept here and dropped at encoding time.
func (a *Attrs) Set(key string, value any) {
	*a = append(*a, Attr{Key: key, Value: value})
}

// Int64String is an int64 that marshals to/from a JSON string.
//
// JSON numbers are IEEE 754 doubles and only represent integers exactly up to 2^53, so
// nanosecond timestamps and int attributes travel as decimal strings.
// See: https://protobuf.dev/programming-guides/json/
type Int64String int64

func (i Int64String) MarshalJSON() ([]byte, error) {
	return fmt.Appendf(nil, `"%d"`, i), nil
}

func (i *Int64String) UnmarshalJSON(data []byte) error {
	// both "123" and 123 are valid encodings of an int64
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*i = Int64String(v)
	return nil
}

// Double is a float64 that encodes non-finite values the way protobuf JSON does.
type Double float64

func (d Double) MarshalJSON() ([]byte, error) {
	f := float64(d)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Infinity"`), nil
	}
	return json.Marshal(f)
}

func (d *Double) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"NaN"`:
		*d = Double(math.NaN())
		return nil
	case `"Infinity"`:
		*d = Double(math.Inf(1))
		return nil
	case `"-Infinity"`:
		*d = Double(math.Inf(-1))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*d = Double(f)
	return nil
}

// KeyValue corresponds to KeyValue.
// https://github.com/open-telemetry/opentelemetry-proto/blob/v1.3.2/opentelemetry/proto/common/v1/common.proto#L64
type KeyValue struct {
	Key   string   `json:"key"`
	Value AnyValue `json:"value"`
}

// AnyValue corresponds to AnyValue. Exactly one field is set.
// https://github.com/open-telemetry/opentelemetry-proto/blob/v1.3.2/opentelemetry/proto/common/v1/common.proto#L28
type AnyValue struct {
	StringValue *string      `json:"stringValue,omitempty"`
	BoolValue   *bool        `json:"boolValue,omitempty"`
	IntValue    *Int64String `json:"intValue,omitempty"`
	DoubleValue *Double      `json:"doubleValue,omitempty"`
	ArrayValue  *ArrayValue  `json:"arrayValue,omitempty"`
}

// ArrayValue corresponds to ArrayValue.
type ArrayValue struct {
	Values []AnyValue `json:"values"`
}

func StringValue(v string) AnyValue {
	return AnyValue{StringValue: &v}
}

func BoolValue(v bool) AnyValue {
	return AnyValue{BoolValue: &v}
}

func IntValue(v int64) AnyValue {
	i := Int64String(v)
	return AnyValue{IntValue: &i}
}

func DoubleValue(v float64) AnyValue {
	d := Double(v)
	return AnyValue{DoubleValue: &d}
}

func ArrayOf(values ...AnyValue) AnyValue {
	if values == nil {
		values = []AnyValue{}
	}
	return AnyValue{ArrayValue: &ArrayValue{Values: values}}
}

// EncodeValue converts v into its tagged wire value. It reports false when v is absent: nil,
// a nil pointer, a nil slice, map, channel or func.
//
// Numbers are tagged by value rather than by Go type: any finite whole number in int64 range
// becomes an intValue, so float64(42) and int(42) encode identically. Slice elements are
// encoded recursively and absent elements are dropped. Values of any other type are encoded
// as their fmt.Sprint string, errors as their message.
func EncodeValue(v any) (AnyValue, bool) {
	switch t := v.(type) {
	case nil:
		return AnyValue{}, false
	case string:
		return StringValue(t), true
	case bool:
		return BoolValue(t), true
	case int:
		return IntValue(int64(t)), true
	case int64:
		return IntValue(t), true
	case float64:
		return numberValue(t), true
	case error:
		if isNilPointer(t) {
			return AnyValue{}, false
		}
		return StringValue(t.Error()), true
	}
	return encodeReflect(reflect.ValueOf(v))
}

func encodeReflect(rv reflect.Value) (AnyValue, bool) {
	switch rv.Kind() {
	case reflect.Invalid:
		return AnyValue{}, false
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return AnyValue{}, false
		}
		return encodeReflect(rv.Elem())
	case reflect.String:
		return StringValue(rv.String()), true
	case reflect.Bool:
		return BoolValue(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntValue(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return DoubleValue(float64(u)), true
		}
		return IntValue(int64(u)), true
	case reflect.Float32, reflect.Float64:
		return numberValue(rv.Float()), true
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return AnyValue{}, false
		}
		values := make([]AnyValue, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if ev, ok := encodeReflect(rv.Index(i)); ok {
				values = append(values, ev)
			}
		}
		return ArrayOf(values...), true
	case reflect.Map, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return AnyValue{}, false
		}
	}
	if !rv.CanInterface() {
		return StringValue(rv.String()), true
	}
	return StringValue(fmt.Sprint(rv.Interface())), true
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// 2^63 is exactly representable as a float64, 2^63-1 is not.
const twoTo63 = float64(1 << 63)

func numberValue(f float64) AnyValue {
	if !math.IsInf(f, 0) && f == math.Trunc(f) && f >= -twoTo63 && f < twoTo63 {
		return IntValue(int64(f))
	}
	return DoubleValue(f)
}

// EncodeAttr encodes a single attribute, reporting false when value is absent.
func EncodeAttr(key string, value any) (KeyValue, bool) {
	v, ok := EncodeValue(value)
	if !ok {
		return KeyValue{}, false
	}
	return KeyValue{Key: key, Value: v}, true
}

// EncodeAttrs encodes attrs in order, dropping absent entries. The result is never nil.
func EncodeAttrs(attrs Attrs) []KeyValue {
	out := make([]KeyValue, 0, len(attrs))
	for _, a := range attrs {
		if kv, ok := EncodeAttr(a.Key, a.Value); ok {
			out = append(out, kv)
		}
	}
	return out
}
