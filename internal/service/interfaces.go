// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/hwconfig-gen/models"
)

// HeaderService turns a hardware configuration document into hw_config.h.
type HeaderService interface {
	// Generate reads req.InputPath, renders the header for req.Schema and,
	// unless req.DryRun is set, overwrites req.OutputPath. Nothing is
	// written when any step before the write fails.
	Generate(ctx context.Context, req models.GenerateRequest) (models.GeneratedHeader, error)
}

// HeaderServiceWrapper defines middleware composition for HeaderService.
// Implementations wrap an existing HeaderService to add behavior such as
// logging.
type HeaderServiceWrapper interface {
	Wrap(HeaderService) HeaderService // returns a decorated HeaderService applying additional behavior
}
