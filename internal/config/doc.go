// Package config provides settings loading, merging, and validation for
// hwconfig-gen.
//
// Settings are assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables (PROJECT_DIR and PROJECT_INCLUDE_DIR are the
//     names the firmware build exports; tool options use HWCONFIG_)
//  3. JSON settings file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig]; [StructuredConfig.GenerateRequest]
// maps the result onto the service layer's request type.
package config
