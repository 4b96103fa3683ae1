// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when the merged settings are incomplete or
// invalid.
var (
	// ErrMissingProjectDir indicates a relative input path with no project
	// directory to resolve it against.
	ErrMissingProjectDir = errors.New("project directory is not set (PROJECT_DIR or --project-dir)")
	// ErrMissingIncludeDir indicates a relative output path with no include
	// directory to resolve it against.
	ErrMissingIncludeDir = errors.New("include directory is not set (PROJECT_INCLUDE_DIR or --include-dir)")
	// ErrInvalidLogLevel indicates a log level zerolog does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLogFormat indicates a log format other than console or json.
	ErrInvalidLogFormat = errors.New("invalid log format")
)
