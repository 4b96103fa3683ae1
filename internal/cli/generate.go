// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/MKhiriev/hwconfig-gen/internal/config"
	"github.com/MKhiriev/hwconfig-gen/internal/service"
	"github.com/MKhiriev/hwconfig-gen/internal/store"
	"github.com/spf13/cobra"
)

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write hw_config.h (default command)",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
	config.RegisterGenerateFlags(cmd.Flags())

	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log.Debug().Any("settings", cfg).Msg("received settings")

	req, err := cfg.GenerateRequest()
	if err != nil {
		return err
	}

	services := service.NewServices(store.NewStorages(log), log)
	header, err := services.HeaderService.Generate(commandContext(cmd), req)
	if err != nil {
		return err
	}

	if !header.Written {
		return write(cmd.OutOrStdout(), header.Content)
	}
	return nil
}
