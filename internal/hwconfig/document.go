// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hwconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/buger/jsonparser"
)

// Document is a parsed hardware configuration document. It keeps the raw
// JSON bytes and resolves key paths on demand, so every lookup reflects
// exactly what the file contains.
type Document struct {
	raw []byte
}

// Value is a single scalar extracted from a [Document].
type Value struct {
	// Path is the key path the value was found at (e.g. ["i2c", "sda"]).
	Path []string
	// Raw holds the JSON token bytes; strings are returned without quotes
	// and still escaped.
	Raw []byte
	// Type is the JSON type of the token.
	Type jsonparser.ValueType
}

// Key returns the dotted key path of v, used in error messages.
func (v Value) Key() string {
	return strings.Join(v.Path, ".")
}

// ParseDocument validates data as JSON and checks that its top-level value
// is an object.
func ParseDocument(data []byte) (*Document, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrMalformedDocument)
	}

	_, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if typ != jsonparser.Object {
		return nil, fmt.Errorf("%w: top-level value is %v, want object", ErrMalformedDocument, typ)
	}

	return &Document{raw: data}, nil
}

// Lookup returns the value stored under path. A path that does not exist,
// including one that descends into a non-object, yields [ErrMissingField].
// When an object repeats a key the last occurrence wins.
func (d *Document) Lookup(path ...string) (Value, error) {
	data, typ := d.raw, jsonparser.Object
	for _, key := range path {
		if typ != jsonparser.Object {
			return Value{}, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(path, "."))
		}

		var found bool
		var err error
		data, typ, found, err = lastMember(data, key)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s: %w", ErrMalformedDocument, strings.Join(path, "."), err)
		}
		if !found {
			return Value{}, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(path, "."))
		}
	}

	return Value{Path: path, Raw: data, Type: typ}, nil
}

// lastMember scans the members of object and returns the value of the last
// one named key.
func lastMember(object []byte, key string) ([]byte, jsonparser.ValueType, bool, error) {
	var (
		value []byte
		typ   jsonparser.ValueType
		found bool
	)
	err := jsonparser.ObjectEach(object, func(k, v []byte, t jsonparser.ValueType, _ int) error {
		name, err := memberName(k)
		if err != nil {
			return err
		}
		if name == key {
			value, typ, found = v, t, true
		}
		return nil
	})
	if err != nil {
		return nil, jsonparser.NotExist, false, err
	}

	return value, typ, found, nil
}

// memberName unescapes a raw object key.
func memberName(raw []byte) (string, error) {
	if bytes.IndexByte(raw, '\\') < 0 {
		return string(raw), nil
	}
	return jsonparser.ParseString(raw)
}
