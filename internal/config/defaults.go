// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"

	"github.com/MKhiriev/hwconfig-gen/internal/hwconfig"
	"github.com/MKhiriev/hwconfig-gen/internal/logger"
)

// Built-in defaults matching the firmware project layout.
var (
	DefaultInput     = filepath.Join("lib", "hardware_cf.json")
	DefaultOutput    = "hw_config.h"
	DefaultLogLevel  = "info"
	DefaultLogFormat = logger.FormatConsole
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Paths: Paths{
			Input:  DefaultInput,
			Output: DefaultOutput,
		},
		Generator: Generator{
			Schema: hwconfig.DefaultSchema,
		},
		Log: Log{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
