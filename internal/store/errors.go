// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [HardwareFileStorage]. Callers should use
// [errors.Is] to match against these values; the underlying *fs.PathError
// stays in the chain.
var (
	// ErrConfigNotFound is returned when the configuration document does not
	// exist or cannot be read.
	ErrConfigNotFound = errors.New("hardware configuration not found")

	// ErrOutputWrite is returned when the header cannot be written, e.g.
	// the include directory is missing or not writable.
	ErrOutputWrite = errors.New("error writing generated header")
)
