// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-awl-bridge/internal/config"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/internal/store"
	"github.com/MKhiriev/go-awl-bridge/models"
)

type Services struct {
	SessionService  SessionService
	GatewayService  GatewayService
	RecorderService RecorderService
	RelayService    RelayService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	var readings store.ReadingRepository
	if storages.Enabled() {
		readings = storages.ReadingRepository
	}

	session := NewSessionService(cfg.Symphony, cfg.AWL, logger)
	gateways := NewGatewayService(session, cfg.AWL, logger)

	return &Services{
		SessionService:  session,
		GatewayService:  gateways,
		RecorderService: NewRecorderService(readings, gateways, logger),
		RelayService:    NewRelayService(session, gateways, logger),
		AppInfoService:  appInfo,
	}, nil
}
