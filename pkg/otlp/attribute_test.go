//go:build unit || !integration

package otlp

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/models"
)

type verdict string

func TestEncodeValue(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected AnyValue
		omitted  bool
	}{
		{name: "nil", input: nil, omitted: true},
		{name: "nil string pointer", input: (*string)(nil), omitted: true},
		{name: "nil float pointer", input: (*float64)(nil), omitted: true},
		{name: "nil slice", input: []string(nil), omitted: true},
		{name: "string", input: "clear", expected: StringValue("clear")},
		{name: "empty string", input: "", expected: StringValue("")},
		{name: "named string", input: verdict("review_needed"), expected: StringValue("review_needed")},
		{name: "string pointer", input: models.Ptr("agent-1"), expected: StringValue("agent-1")},
		{name: "bool", input: false, expected: BoolValue(false)},
		{name: "bool pointer", input: models.Ptr(true), expected: BoolValue(true)},
		{name: "int", input: 42, expected: IntValue(42)},
		{name: "int32", input: int32(-7), expected: IntValue(-7)},
		{name: "uint8", input: uint8(3), expected: IntValue(3)},
		{name: "int64 pointer", input: models.Ptr(int64(1200)), expected: IntValue(1200)},
		{name: "whole float", input: 42.0, expected: IntValue(42)},
		{name: "whole float pointer", input: models.Ptr(120.0), expected: IntValue(120)},
		{name: "negative zero", input: math.Copysign(0, -1), expected: IntValue(0)},
		{name: "fractional float", input: 0.95, expected: DoubleValue(0.95)},
		{name: "fractional float pointer", input: models.Ptr(450.5), expected: DoubleValue(450.5)},
		{name: "float beyond int64", input: 1e300, expected: DoubleValue(1e300)},
		{name: "huge uint", input: uint64(math.MaxUint64), expected: DoubleValue(float64(uint64(math.MaxUint64)))},
		{name: "positive infinity", input: math.Inf(1), expected: DoubleValue(math.Inf(1))},
		{
			name:     "string slice",
			input:    []string{"a", "b"},
			expected: ArrayOf(StringValue("a"), StringValue("b")),
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: ArrayOf(),
		},
		{
			name:     "mixed slice drops nil elements",
			input:    []any{"a", nil, 1, 2.5, (*string)(nil), true},
			expected: ArrayOf(StringValue("a"), IntValue(1), DoubleValue(2.5), BoolValue(true)),
		},
		{
			name:     "nested slice",
			input:    [][]int{{1}, {2, 3}},
			expected: ArrayOf(ArrayOf(IntValue(1)), ArrayOf(IntValue(2), IntValue(3))),
		},
		{name: "error falls back to string", input: errors.New("boom"), expected: StringValue("boom")},
		{name: "struct falls back to string", input: struct{ A int }{A: 1}, expected: StringValue("{1}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, ok := EncodeValue(tt.input)
			if tt.omitted {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestEncodeValue_NaN(t *testing.T) {
	v, ok := EncodeValue(math.NaN())
	require.True(t, ok)
	require.NotNil(t, v.DoubleValue)
	assert.True(t, math.IsNaN(float64(*v.DoubleValue)))
	assert.Nil(t, v.IntValue)
}

func TestEncodeAttr_JSON(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "int", value: 42, expected: `{"key":"k","value":{"intValue":"42"}}`},
		{name: "double", value: 0.95, expected: `{"key":"k","value":{"doubleValue":0.95}}`},
		{name: "string", value: "x", expected: `{"key":"k","value":{"stringValue":"x"}}`},
		{name: "bool", value: true, expected: `{"key":"k","value":{"boolValue":true}}`},
		{name: "nan", value: math.NaN(), expected: `{"key":"k","value":{"doubleValue":"NaN"}}`},
		{name: "negative infinity", value: math.Inf(-1), expected: `{"key":"k","value":{"doubleValue":"-Infinity"}}`},
		{
			name:     "array",
			value:    []any{"a", nil, 1},
			expected: `{"key":"k","value":{"arrayValue":{"values":[{"stringValue":"a"},{"intValue":"1"}]}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, ok := EncodeAttr("k", tt.value)
			require.True(t, ok)
			actual, err := json.Marshal(kv)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(actual))
		})
	}
}

func TestEncodeAttr_Omitted(t *testing.T) {
	_, ok := EncodeAttr("k", nil)
	assert.False(t, ok)
}

func TestEncodeAttrs(t *testing.T) {
	var attrs Attrs
	attrs.Set("b", "first")
	attrs.Set("skipped", (*bool)(nil))
	attrs.Set("a", 2)
	attrs.Set("also-skipped", nil)
	attrs.Set("c", 0.5)

	actual := EncodeAttrs(attrs)

	assert.Equal(t, []KeyValue{
		{Key: "b", Value: StringValue("first")},
		{Key: "a", Value: IntValue(2)},
		{Key: "c", Value: DoubleValue(0.5)},
	}, actual)
}

func TestEncodeAttrs_Empty(t *testing.T) {
	actual := EncodeAttrs(nil)
	assert.NotNil(t, actual)
	assert.Empty(t, actual)

	body, err := json.Marshal(actual)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

func TestWireNumbers_RoundTrip(t *testing.T) {
	var i Int64String
	require.NoError(t, json.Unmarshal([]byte(`"9007199254740993"`), &i))
	assert.Equal(t, Int64String(9007199254740993), i)
	require.NoError(t, json.Unmarshal([]byte(`12`), &i))
	assert.Equal(t, Int64String(12), i)

	var d Double
	require.NoError(t, json.Unmarshal([]byte(`"Infinity"`), &d))
	assert.True(t, math.IsInf(float64(d), 1))
	require.NoError(t, json.Unmarshal([]byte(`0.25`), &d))
	assert.Equal(t, Double(0.25), d)
}
