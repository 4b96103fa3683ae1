// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/hwconfig-gen/internal/cli"
	"github.com/MKhiriev/hwconfig-gen/internal/logger"
	"github.com/MKhiriev/hwconfig-gen/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		logger.NewConsoleLogger("hwconfig-gen").Fatal().Err(err).Msg("hwconfig-gen failed")
	}
}
