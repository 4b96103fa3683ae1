// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names shared by the command tree and [GetStructuredConfig].
const (
	FlagProjectDir = "project-dir"
	FlagIncludeDir = "include-dir"
	FlagInput      = "input"
	FlagOutput     = "output"
	FlagSchema     = "schema"
	FlagDryRun     = "dry-run"
	FlagSettings   = "settings"
	FlagLogLevel   = "log-level"
	FlagLogFormat  = "log-format"
)

// RegisterGenerateFlags adds the flags that locate the document and the
// header.
//
// Flags:
//
//	--project-dir firmware project root (PROJECT_DIR)
//	--include-dir firmware include directory (PROJECT_INCLUDE_DIR)
//	-i/--input hardware configuration document, relative to the project dir
//	-o/--output generated header, relative to the include dir
//	--dry-run print the header instead of writing it
func RegisterGenerateFlags(fs *pflag.FlagSet) {
	fs.String(FlagProjectDir, "", "Firmware project root directory")
	fs.String(FlagIncludeDir, "", "Firmware include directory")
	fs.StringP(FlagInput, "i", "", "Hardware configuration JSON (default lib/hardware_cf.json)")
	fs.StringP(FlagOutput, "o", "", "Generated header (default hw_config.h)")
	fs.Bool(FlagDryRun, false, "Print the header to stdout instead of writing it")
}

// RegisterCommonFlags adds the flags every command understands.
//
// Flags:
//
//	-s/--schema variant to emit: minimal, sensors or full
//	-c/--settings JSON settings file
//	--log-level zerolog level name
//	--log-format console or json
func RegisterCommonFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagSchema, "s", "", "Header variant: minimal, sensors or full (default full)")
	fs.StringP(FlagSettings, "c", "", "JSON settings file path")
	fs.String(FlagLogLevel, "", "Log level: debug, info, warn, error (default info)")
	fs.String(FlagLogFormat, "", "Log format: console or json (default console)")
}

// parseFlags reads every known flag that is registered on fs. Flags that a
// command does not register are left zero.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	if fs == nil {
		return cfg, nil
	}

	var err error
	stringFlags := []struct {
		name string
		dst  *string
	}{
		{FlagProjectDir, &cfg.Paths.ProjectDir},
		{FlagIncludeDir, &cfg.Paths.IncludeDir},
		{FlagInput, &cfg.Paths.Input},
		{FlagOutput, &cfg.Paths.Output},
		{FlagSchema, &cfg.Generator.Schema},
		{FlagSettings, &cfg.SettingsFilePath},
		{FlagLogLevel, &cfg.Log.Level},
		{FlagLogFormat, &cfg.Log.Format},
	}
	for _, f := range stringFlags {
		if fs.Lookup(f.name) == nil {
			continue
		}
		if *f.dst, err = fs.GetString(f.name); err != nil {
			return nil, fmt.Errorf("error reading flag --%s: %w", f.name, err)
		}
	}

	if fs.Lookup(FlagDryRun) != nil && fs.Changed(FlagDryRun) {
		dryRun, err := fs.GetBool(FlagDryRun)
		if err != nil {
			return nil, fmt.Errorf("error reading flag --%s: %w", FlagDryRun, err)
		}
		cfg.Generator.DryRun = &dryRun
	}

	return cfg, nil
}
