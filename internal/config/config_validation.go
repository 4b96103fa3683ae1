// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/hwconfig-gen/internal/hwconfig"
	"github.com/MKhiriev/hwconfig-gen/internal/logger"
	"github.com/rs/zerolog"
)

// validate checks the settings every command depends on: the schema
// variant and the logger options. Path checks are deferred to
// [StructuredConfig.GenerateRequest] because only generation needs them.
func (cfg *StructuredConfig) validate() error {
	if _, err := hwconfig.SchemaByName(cfg.Generator.Schema); err != nil {
		return err
	}

	if _, err := cfg.Log.ZerologLevel(); err != nil {
		return err
	}

	switch cfg.Log.Format {
	case "", logger.FormatConsole, logger.FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, cfg.Log.Format)
	}

	return nil
}

func (cfg *StructuredConfig) validatePaths() error {
	if cfg.Paths.Input == "" {
		return fmt.Errorf("%w: no input path", ErrMissingProjectDir)
	}
	if !filepath.IsAbs(cfg.Paths.Input) && cfg.Paths.ProjectDir == "" {
		return ErrMissingProjectDir
	}

	if cfg.Generator.IsDryRun() {
		return nil
	}
	if cfg.Paths.Output == "" || (!filepath.IsAbs(cfg.Paths.Output) && cfg.Paths.IncludeDir == "") {
		return ErrMissingIncludeDir
	}

	return nil
}

// ZerologLevel parses Level; an empty level means info.
func (l Log) ZerologLevel() (zerolog.Level, error) {
	if l.Level == "" {
		return zerolog.InfoLevel, nil
	}

	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, l.Level)
	}
	return level, nil
}
