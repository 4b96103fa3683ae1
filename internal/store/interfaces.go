// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// HardwareFileStorage reads the hardware configuration document and writes
// the generated header.
type HardwareFileStorage interface {
	// ReadConfig returns the raw bytes of the configuration document at path.
	ReadConfig(ctx context.Context, path string) ([]byte, error)
	// WriteHeader replaces the file at path with content.
	WriteHeader(ctx context.Context, path string, content []byte) error
}
