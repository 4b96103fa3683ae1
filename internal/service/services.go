// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/hwconfig-gen/internal/logger"
	"github.com/MKhiriev/hwconfig-gen/internal/store"
)

type Services struct {
	HeaderService HeaderService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		HeaderService: NewLoggingHeaderService(logger).Wrap(
			NewHeaderService(storages.HardwareFileStorage, logger.GetChildLogger("service")),
		),
	}
}
