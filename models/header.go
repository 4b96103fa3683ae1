// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GenerateRequest describes one header generation run.
type GenerateRequest struct {
	// InputPath is the hardware configuration document (hardware_cf.json).
	InputPath string `json:"input_path"`

	// OutputPath is the header file to create or overwrite (hw_config.h).
	OutputPath string `json:"output_path"`

	// Schema names the field set to emit: "minimal", "sensors" or "full".
	// Empty selects the default variant.
	Schema string `json:"schema"`

	// DryRun renders the header without writing OutputPath.
	DryRun bool `json:"dry_run"`
}

// GeneratedHeader is the result of a successful generation run.
type GeneratedHeader struct {
	// Path is where the header was (or, for a dry run, would have been)
	// written.
	Path string `json:"path"`

	// Schema is the variant that produced Content.
	Schema string `json:"schema"`

	// Macros is the number of #define lines in Content.
	Macros int `json:"macros"`

	// Content is the complete header text.
	Content []byte `json:"-"`

	// Written is false for dry runs.
	Written bool `json:"written"`
}
