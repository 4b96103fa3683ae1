// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/MKhiriev/hwconfig-gen/internal/hwconfig"
	"github.com/spf13/cobra"
)

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema the hardware configuration must satisfy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			schema, err := hwconfig.SchemaByName(cfg.Generator.Schema)
			if err != nil {
				return err
			}

			data, err := schema.MarshalJSONSchema()
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), data)
		},
	}
}
