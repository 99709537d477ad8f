// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-awl-bridge/internal/config"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/models"
)

type appInfoService struct {
	build models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService returns the version service. A version injected at build
// time wins over the configured one.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if !build.HasVersion() {
		if cfg.Version == "" {
			return nil, ErrVersionIsNotSpecified
		}
		build.Version = cfg.Version
	}

	return &appInfoService{
		build:  build,
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.build.Version
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.build
}
