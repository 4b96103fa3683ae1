// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hwconfig

import (
	"testing"

	"github.com/buger/jsonparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func number(raw string) Value {
	return Value{Path: []string{"g", "k"}, Raw: []byte(raw), Type: jsonparser.Number}
}

func TestDecimal(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{name: "small integer", value: number("21"), expected: "21"},
		{name: "zero", value: number("0"), expected: "0"},
		{name: "negative zero", value: number("-0"), expected: "0"},
		{name: "negative integer", value: number("-12"), expected: "-12"},
		{name: "integer beyond int64", value: number("123456789012345678901234567890"), expected: "123456789012345678901234567890"},
		{name: "fraction", value: number("1.25"), expected: "1.25"},
		{name: "integral float keeps fraction", value: number("3.0"), expected: "3.0"},
		{name: "negative fraction", value: number("-0.5"), expected: "-0.5"},
		{name: "float negative zero", value: number("-0.0"), expected: "-0.0"},
		{name: "exponent in fixed range", value: number("1e2"), expected: "100.0"},
		{name: "small value in fixed range", value: number("0.0001"), expected: "0.0001"},
		{name: "small value in exponent range", value: number("0.000015"), expected: "1.5e-05"},
		{name: "large value in exponent range", value: number("1e16"), expected: "1e+16"},
		{name: "large value in fixed range", value: number("1234567.0"), expected: "1234567.0"},
		{
			name:     "string copied verbatim",
			value:    Value{Path: []string{"i2c", "mux_address"}, Raw: []byte("0x70"), Type: jsonparser.String},
			expected: "0x70",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decimal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDecimal_InvalidValue(t *testing.T) {
	tests := []struct {
		name  string
		value Value
	}{
		{name: "boolean", value: Value{Raw: []byte("true"), Type: jsonparser.Boolean}},
		{name: "null", value: Value{Raw: []byte("null"), Type: jsonparser.Null}},
		{name: "object", value: Value{Raw: []byte(`{"a":1}`), Type: jsonparser.Object}},
		{name: "array", value: Value{Raw: []byte(`[1]`), Type: jsonparser.Array}},
		{name: "empty string", value: Value{Raw: []byte(""), Type: jsonparser.String}},
		{name: "string with newline", value: Value{Raw: []byte(`5\n#define X 1`), Type: jsonparser.String}},
		{name: "float out of range", value: number("1e400")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decimal(tt.value)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{raw: "0", expected: "0x00"},
		{raw: "4", expected: "0x04"},
		{raw: "15", expected: "0x0F"},
		{raw: "112", expected: "0x70"},
		{raw: "255", expected: "0xFF"},
		{raw: "256", expected: "0x100"},
		{raw: "4096", expected: "0x1000"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Hex(number(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestHex_InvalidValue(t *testing.T) {
	tests := []struct {
		name  string
		value Value
	}{
		{name: "negative", value: number("-4")},
		{name: "fraction", value: number("4.5")},
		{name: "integral float", value: number("112.0")},
		{name: "exponent", value: number("1e2")},
		{name: "string", value: Value{Raw: []byte("0x70"), Type: jsonparser.String}},
		{name: "boolean", value: Value{Raw: []byte("false"), Type: jsonparser.Boolean}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Hex(tt.value)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}
