// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/hwconfig-gen/internal/logger"
)

// headerFileMode is the permission set for newly created header files.
const headerFileMode os.FileMode = 0o644

// hardwareFileStorage is the local-filesystem implementation of
// [HardwareFileStorage].
type hardwareFileStorage struct {
	logger *logger.Logger
}

// NewHardwareFileStorage constructs a [HardwareFileStorage] backed by the
// local filesystem.
func NewHardwareFileStorage(logger *logger.Logger) HardwareFileStorage {
	return &hardwareFileStorage{logger: logger}
}

// ReadConfig reads the whole document into memory.
//
// Returns [ErrConfigNotFound] wrapping the OS error if the file is missing
// or unreadable.
func (s *hardwareFileStorage) ReadConfig(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigNotFound, err)
	}

	logger.FromContext(ctx, s.logger).Debug().Str("path", path).Int("bytes", len(data)).Msg("read hardware config")
	return data, nil
}

// WriteHeader truncates or creates the file at path and writes content.
// Parent directories are not created; a missing include directory is a
// build setup error.
//
// Returns [ErrOutputWrite] wrapping the OS error on failure.
func (s *hardwareFileStorage) WriteHeader(ctx context.Context, path string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.WriteFile(path, content, headerFileMode); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}

	logger.FromContext(ctx, s.logger).Debug().Str("path", path).Int("bytes", len(content)).Msg("wrote header")
	return nil
}
