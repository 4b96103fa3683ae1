// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli wires settings, logging, storage and services into the
// hwconfig-gen command tree.
//
// Commands:
//   - hwconfig-gen [generate]: render hw_config.h from hardware_cf.json
//   - hwconfig-gen schema: print the JSON Schema of the input document
//   - hwconfig-gen version: print build metadata
package cli

import (
	"context"
	"io"

	"github.com/MKhiriev/hwconfig-gen/internal/config"
	"github.com/MKhiriev/hwconfig-gen/internal/logger"
	"github.com/MKhiriev/hwconfig-gen/models"
	"github.com/spf13/cobra"
)

const appName = "hwconfig-gen"

// NewRootCommand builds the command tree. Running the root command without
// a subcommand is the same as running generate, which is how the firmware
// build invokes it.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Generate the firmware hardware header from hardware_cf.json",
		Long: "hwconfig-gen reads the hardware configuration document of a firmware project\n" +
			"and writes a C header of #define constants for pins, I2C addresses, sensor\n" +
			"offsets and robot geometry. The firmware build supplies PROJECT_DIR and\n" +
			"PROJECT_INCLUDE_DIR.",
		Version:       buildInfo.BuildVersion(),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runGenerate,
	}
	config.RegisterCommonFlags(root.PersistentFlags())
	config.RegisterGenerateFlags(root.Flags())

	root.AddCommand(
		newGenerateCommand(),
		newSchemaCommand(),
		newVersionCommand(buildInfo),
	)

	return root
}

// loadSettings merges settings for cmd and builds the logger they describe.
func loadSettings(cmd *cobra.Command) (*config.StructuredConfig, *logger.Logger, error) {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	level, err := cfg.Log.ZerologLevel()
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger.New(appName, cfg.Log.Format, level, cmd.ErrOrStderr()), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func write(w io.Writer, data []byte) error {
	_, err := w.Write(data)
	return err
}
