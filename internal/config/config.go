// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/hwconfig-gen/models"
	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level settings container for hwconfig-gen.
// It is populated by merging command-line flags, environment variables, an
// optional JSON settings file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Paths locates the hardware configuration document and the header.
	Paths Paths

	// Generator selects what is emitted.
	Generator Generator `envPrefix:"HWCONFIG_"`

	// Log controls diagnostic output.
	Log Log `envPrefix:"HWCONFIG_LOG_"`

	// SettingsFilePath is the optional path to a JSON settings file.
	// Populated via the HWCONFIG_SETTINGS environment variable or the
	// -c / --settings flag.
	SettingsFilePath string `env:"HWCONFIG_SETTINGS"`
}

// Paths holds the two directories handed over by the firmware build and
// the document/header locations relative to them.
type Paths struct {
	// ProjectDir is the firmware project root.
	// Env: PROJECT_DIR
	ProjectDir string `env:"PROJECT_DIR"`

	// IncludeDir is the directory the firmware compiles headers from.
	// Env: PROJECT_INCLUDE_DIR
	IncludeDir string `env:"PROJECT_INCLUDE_DIR"`

	// Input is the hardware configuration document. Relative paths are
	// resolved against ProjectDir.
	// Env: HWCONFIG_INPUT
	Input string `env:"HWCONFIG_INPUT"`

	// Output is the generated header. Relative paths are resolved against
	// IncludeDir.
	// Env: HWCONFIG_OUTPUT
	Output string `env:"HWCONFIG_OUTPUT"`
}

// Generator holds header generation options.
type Generator struct {
	// Schema is the variant to emit: "minimal", "sensors" or "full".
	// Env: HWCONFIG_SCHEMA
	Schema string `env:"SCHEMA"`

	// DryRun renders the header to stdout instead of writing it. Nil means
	// unset, so an explicit false from a higher-priority source still wins.
	// Env: HWCONFIG_DRY_RUN
	DryRun *bool `env:"DRY_RUN"`
}

// IsDryRun reports whether DryRun is set to true.
func (g Generator) IsDryRun() bool {
	return g.DryRun != nil && *g.DryRun
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error, ...).
	// Env: HWCONFIG_LOG_LEVEL
	Level string `env:"LEVEL"`

	// Format is "console" or "json".
	// Env: HWCONFIG_LOG_FORMAT
	Format string `env:"FORMAT"`
}

// GetStructuredConfig loads, merges, and validates the settings from all
// available sources in the following priority order (earlier sources win
// for non-zero fields):
//  1. Command-line flags registered on fs
//  2. Environment variables
//  3. JSON settings file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// InputPath returns the absolute-or-project-relative document path.
func (cfg *StructuredConfig) InputPath() string {
	return resolve(cfg.Paths.ProjectDir, cfg.Paths.Input)
}

// OutputPath returns the absolute-or-include-relative header path.
func (cfg *StructuredConfig) OutputPath() string {
	return resolve(cfg.Paths.IncludeDir, cfg.Paths.Output)
}

// GenerateRequest maps the settings onto a [models.GenerateRequest].
//
// Returns [ErrMissingProjectDir] or [ErrMissingIncludeDir] when a relative
// path has no directory to resolve against. The include directory is not
// needed for dry runs.
func (cfg *StructuredConfig) GenerateRequest() (models.GenerateRequest, error) {
	if err := cfg.validatePaths(); err != nil {
		return models.GenerateRequest{}, fmt.Errorf("error resolving paths: %w", err)
	}

	req := models.GenerateRequest{
		InputPath: cfg.InputPath(),
		Schema:    cfg.Generator.Schema,
		DryRun:    cfg.Generator.IsDryRun(),
	}
	if cfg.Paths.Output != "" && (cfg.Paths.IncludeDir != "" || filepath.IsAbs(cfg.Paths.Output)) {
		req.OutputPath = cfg.OutputPath()
	}

	return req, nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
