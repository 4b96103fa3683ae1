// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"paths": {
			"project_dir": "/work/robot",
			"include_dir": "/work/robot/include",
			"input": "lib/hardware_cf.json",
			"output": "hw_config.h"
		},
		"generator": {"schema": "sensors", "dry_run": true},
		"log": {"level": "warn", "format": "json"}
	}`), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{
		Paths: Paths{
			ProjectDir: "/work/robot",
			IncludeDir: "/work/robot/include",
			Input:      "lib/hardware_cf.json",
			Output:     "hw_config.h",
		},
		Generator: Generator{Schema: "sensors", DryRun: ptr(true)},
		Log:       Log{Level: "warn", Format: "json"},
	}, cfg)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"paths": `), 0o600))

	cfg, err := parseJSON(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}
