// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-awl-bridge/internal/config"
	"github.com/MKhiriev/go-awl-bridge/models"
)

// AWLConnection is the part of an AWL WebSocket connection the session
// keeper drives. *awl.Conn implements it.
type AWLConnection interface {
	Login(ctx context.Context, sessionID string) (models.LoginData, error)
	Read(ctx context.Context, gwid string) (models.Reading, error)
	LoginData() (models.LoginData, bool)
	Done() <-chan struct{}
	Err() error
	Close() error
}

// SessionService keeps one authenticated AWL session alive and serves
// reads through it.
type SessionService interface {
	// Start establishes the first session and launches the supervisor that
	// reconnects after drops and renews the session periodically.
	Start(ctx context.Context) error
	// Stop ends the supervisor, closes the socket and logs out.
	Stop(ctx context.Context) error
	// Reconnect replaces the portal credentials and re-establishes the
	// session with them.
	Reconnect(ctx context.Context, creds config.Symphony) error

	Read(ctx context.Context, gwid string) (models.Reading, error)
	LoginData() (models.LoginData, bool)
	Status() models.SessionStatus
}

// GatewayService exposes gateways and zones of the logged-in account.
type GatewayService interface {
	ListGateways(ctx context.Context) ([]models.GatewaySummary, error)
	RawLoginData(ctx context.Context) (map[string]any, error)
	ListZones(ctx context.Context) ([]models.Zone, error)
	// ListGatewayZones lists the zones of gwid; "*" lists every zone.
	ListGatewayZones(ctx context.Context, gwid string) ([]models.Zone, error)
	GetZone(ctx context.Context, gwid string, zoneID int) (models.Zone, error)
	ReadGateway(ctx context.Context, gwid string) (models.Reading, error)
	ReadZoneDetails(ctx context.Context, gwid string, zoneID int) (models.ZoneDetails, error)
}

// RecorderService persists typed readings and serves the history.
type RecorderService interface {
	Enabled() bool
	RecordGateway(ctx context.Context, gwid string) (models.ReadingRecord, error)
	// RecordAll records every gateway of the account and returns how many
	// records were stored.
	RecordAll(ctx context.Context) (int, error)
	History(ctx context.Context, req models.HistoryRequest) ([]models.ReadingRecord, error)
	// Prune removes records older than retention.
	Prune(ctx context.Context, retention time.Duration) (int64, error)
}

// RelayService answers commands sent by WebSocket clients of the bridge.
type RelayService interface {
	Execute(ctx context.Context, req models.RelayRequest) models.RelayResponse
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
