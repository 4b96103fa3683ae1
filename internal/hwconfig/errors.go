// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hwconfig

import "errors"

// Sentinel errors returned while resolving a hardware configuration document
// into header macros. Callers should use [errors.Is] to match against these
// values; the wrapped message carries the offending key path.
var (
	// ErrMalformedDocument is returned when the document is not valid JSON
	// or its top-level value is not an object.
	ErrMalformedDocument = errors.New("malformed hardware configuration")

	// ErrMissingField is returned when a key path required by the selected
	// schema is absent from the document. There is no default substitution.
	ErrMissingField = errors.New("missing hardware configuration field")

	// ErrInvalidValue is returned when a field holds a value its formatter
	// cannot render (e.g. an object, a boolean, or a negative mux address).
	ErrInvalidValue = errors.New("invalid hardware configuration value")

	// ErrUnknownSchema is returned when a schema variant name is not one of
	// [SchemaNames].
	ErrUnknownSchema = errors.New("unknown schema variant")
)
