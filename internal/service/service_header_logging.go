// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"

	"github.com/MKhiriev/hwconfig-gen/internal/logger"
	"github.com/MKhiriev/hwconfig-gen/models"
)

// LoggingHeaderService reports progress of every generation run: one line
// naming the document being loaded and one naming the generated file.
type LoggingHeaderService struct {
	inner  HeaderService
	logger *logger.Logger
}

func NewLoggingHeaderService(logger *logger.Logger) HeaderServiceWrapper {
	return &LoggingHeaderService{logger: logger}
}

// Generate attaches a logger carrying the input path to ctx for the wrapped
// service and its storage. Failures are logged at debug level only; the
// caller reports the returned error.
func (l *LoggingHeaderService) Generate(ctx context.Context, req models.GenerateRequest) (models.GeneratedHeader, error) {
	run := &logger.Logger{Logger: l.logger.With().Str("input", req.InputPath).Logger()}
	ctx = run.WithContext(ctx)

	run.Info().Str("path", req.InputPath).Msg("loading hardware config")

	header, err := l.inner.Generate(ctx, req)
	if err != nil {
		run.Debug().Err(err).Msg("header generation failed")
		return header, err
	}

	event := run.Info().
		Str("path", header.Path).
		Str("schema", header.Schema).
		Int("macros", header.Macros)
	if !header.Written {
		event.Msg("rendered header (dry run, nothing written)")
		return header, nil
	}
	event.Msgf("generated %s", filepath.Base(header.Path))

	return header, nil
}

func (l *LoggingHeaderService) Wrap(inner HeaderService) HeaderService {
	l.inner = inner
	return l
}
