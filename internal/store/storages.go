// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/hwconfig-gen/internal/logger"

// Storages groups the storage backends used by the service layer.
type Storages struct {
	HardwareFileStorage HardwareFileStorage
}

// NewStorages wires every storage backend with the shared logger.
func NewStorages(logger *logger.Logger) *Storages {
	return &Storages{
		HardwareFileStorage: NewHardwareFileStorage(logger.GetChildLogger("store")),
	}
}
