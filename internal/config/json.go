// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk layout of the settings file.
type StructuredJSONConfig struct {
	Paths struct {
		ProjectDir string `json:"project_dir"`
		IncludeDir string `json:"include_dir"`
		Input      string `json:"input"`
		Output     string `json:"output"`
	} `json:"paths,omitempty"`

	Generator struct {
		Schema string `json:"schema"`
		DryRun *bool  `json:"dry_run"`
	} `json:"generator,omitempty"`

	Log struct {
		Level  string `json:"level"`
		Format string `json:"format"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Paths: Paths{
			ProjectDir: jsonCfg.Paths.ProjectDir,
			IncludeDir: jsonCfg.Paths.IncludeDir,
			Input:      jsonCfg.Paths.Input,
			Output:     jsonCfg.Paths.Output,
		},
		Generator: Generator{
			Schema: jsonCfg.Generator.Schema,
			DryRun: jsonCfg.Generator.DryRun,
		},
		Log: Log{
			Level:  jsonCfg.Log.Level,
			Format: jsonCfg.Log.Format,
		},
		SettingsFilePath: "",
	}

	return cfg, nil
}
