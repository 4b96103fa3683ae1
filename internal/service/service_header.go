// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hwconfig-gen/internal/hwconfig"
	"github.com/MKhiriev/hwconfig-gen/internal/logger"
	"github.com/MKhiriev/hwconfig-gen/internal/store"
	"github.com/MKhiriev/hwconfig-gen/models"
)

type headerService struct {
	storage store.HardwareFileStorage
	logger  *logger.Logger
}

// NewHeaderService constructs the default [HeaderService] on top of the
// given file storage.
func NewHeaderService(storage store.HardwareFileStorage, logger *logger.Logger) HeaderService {
	return &headerService{
		storage: storage,
		logger:  logger,
	}
}

func (s *headerService) Generate(ctx context.Context, req models.GenerateRequest) (models.GeneratedHeader, error) {
	if req.InputPath == "" {
		return models.GeneratedHeader{}, ErrEmptyInputPath
	}
	if req.OutputPath == "" && !req.DryRun {
		return models.GeneratedHeader{}, ErrEmptyOutputPath
	}

	schema, err := hwconfig.SchemaByName(req.Schema)
	if err != nil {
		return models.GeneratedHeader{}, err
	}

	data, err := s.storage.ReadConfig(ctx, req.InputPath)
	if err != nil {
		return models.GeneratedHeader{}, fmt.Errorf("error loading %s: %w", req.InputPath, err)
	}

	doc, err := hwconfig.ParseDocument(data)
	if err != nil {
		return models.GeneratedHeader{}, fmt.Errorf("error parsing %s: %w", req.InputPath, err)
	}

	content, err := schema.Render(doc)
	if err != nil {
		return models.GeneratedHeader{}, fmt.Errorf("error rendering %s header from %s: %w", schema.Name, req.InputPath, err)
	}

	header := models.GeneratedHeader{
		Path:    req.OutputPath,
		Schema:  schema.Name,
		Macros:  len(schema.Fields()),
		Content: content,
	}
	if req.DryRun {
		return header, nil
	}

	if err := s.storage.WriteHeader(ctx, req.OutputPath, content); err != nil {
		return models.GeneratedHeader{}, fmt.Errorf("error writing %s: %w", req.OutputPath, err)
	}
	header.Written = true

	return header, nil
}
