// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hwconfig

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
)

// Formatter renders a document value as the text that follows the macro
// name in a #define line.
type Formatter func(Value) (string, error)

// Decimal renders numbers the way the firmware headers have always carried
// them: integers as plain decimal, non-integers as the shortest text that
// round-trips (always with a fraction or exponent, e.g. "3.0", "1e+16").
//
// String values are copied verbatim so hand-written literals such as
// "0x70" reach the header unchanged.
func Decimal(v Value) (string, error) {
	switch v.Type {
	case jsonparser.Number:
		return formatNumber(v)
	case jsonparser.String:
		s, err := jsonparser.ParseString(v.Raw)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrInvalidValue, v.Key(), err)
		}
		if s == "" || strings.ContainsAny(s, "\r\n") {
			return "", fmt.Errorf("%w: %s: string cannot be emitted on a single #define line", ErrInvalidValue, v.Key())
		}
		return s, nil
	default:
		return "", fmt.Errorf("%w: %s: got %v, want number", ErrInvalidValue, v.Key(), v.Type)
	}
}

// Hex renders a non-negative integer as "0x" followed by uppercase hex
// digits, zero-padded to at least two digits (4 -> 0x04, 255 -> 0xFF).
func Hex(v Value) (string, error) {
	n, err := integer(v)
	if err != nil {
		return "", err
	}
	if n.Sign() < 0 {
		return "", fmt.Errorf("%w: %s: negative value %s", ErrInvalidValue, v.Key(), n)
	}

	digits := strings.ToUpper(n.Text(16))
	if len(digits) < 2 {
		digits = "0" + digits
	}
	return "0x" + digits, nil
}

func formatNumber(v Value) (string, error) {
	if isIntegerLiteral(v.Raw) {
		n, err := integer(v)
		if err != nil {
			return "", err
		}
		return n.String(), nil
	}

	f, err := strconv.ParseFloat(string(v.Raw), 64)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidValue, v.Key(), err)
	}
	return formatFloat(f), nil
}

func integer(v Value) (*big.Int, error) {
	if v.Type != jsonparser.Number || !isIntegerLiteral(v.Raw) {
		return nil, fmt.Errorf("%w: %s: got %q, want integer", ErrInvalidValue, v.Key(), v.Raw)
	}

	n, ok := new(big.Int).SetString(string(v.Raw), 10)
	if !ok {
		return nil, fmt.Errorf("%w: %s: cannot parse %q", ErrInvalidValue, v.Key(), v.Raw)
	}
	return n, nil
}

func isIntegerLiteral(raw []byte) bool {
	return len(raw) > 0 && !strings.ContainsAny(string(raw), ".eE")
}

// formatFloat switches to exponent notation outside [1e-4, 1e16).
func formatFloat(f float64) string {
	exp := strconv.FormatFloat(f, 'e', -1, 64)
	e, _ := strconv.Atoi(exp[strings.LastIndexByte(exp, 'e')+1:])
	if e < -4 || e >= 16 {
		return exp
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
