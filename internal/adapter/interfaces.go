// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP transports of the application.
//
// [SymphonyAdapter] manages the cookie session against the WaterFurnace
// Symphony portal and discovers the AWL WebSocket URI. [BridgeAdapter] is the
// REST client the terminal monitor uses to talk to a running bridge.
//
// Error values defined in errors.go let callers use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrLoginFailed] for a rejected
// login, [ErrGatewayTimeout] for an AWL read that timed out on the bridge).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-awl-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SymphonyAdapter is one login session with the Symphony portal.
// Implementations are safe for concurrent use.
type SymphonyAdapter interface {
	// Login posts the account credentials to the portal with a fresh cookie
	// jar. Redirects are not followed. Returns [ErrSymphonyUnavailable] when
	// the portal cannot be reached, [ErrLoginFailed] when it answers with an
	// error status and [ErrNoSession] when no sessionid cookie was issued.
	Login(ctx context.Context) error

	// Logout ends the portal session. It is bounded by a short timeout and
	// returns [ErrLogoutFailed] on an error status. Without a session it is a
	// no-op.
	Logout(ctx context.Context) error

	// SessionID returns the current sessionid cookie, or an empty string
	// before a successful Login.
	SessionID() string

	// WebsocketURL fetches the portal's AWL configuration script and returns
	// the first ws:// or wss:// URI it contains, or [ErrWebsocketURINotFound].
	WebsocketURL(ctx context.Context) (string, error)
}

// BridgeAdapter is the REST client of a running bridge.
type BridgeAdapter interface {
	// ListZones returns every thermostat zone known to the bridge.
	ListZones(ctx context.Context) ([]models.Zone, error)

	// ListGateways returns the gateway summaries.
	ListGateways(ctx context.Context) ([]models.GatewaySummary, error)

	// ReadGateway returns the latest raw reading of gwid.
	ReadGateway(ctx context.Context, gwid string) (models.Reading, error)

	// ZoneDetails returns the flattened zone data of zone zoneID on gwid.
	ZoneDetails(ctx context.Context, gwid string, zoneID int) (models.ZoneDetails, error)

	// History returns up to limit recorded readings of gwid newer than since.
	History(ctx context.Context, gwid string, since time.Time, limit uint64) ([]models.ReadingRecord, error)

	// Health returns the bridge's AWL session status. A disconnected session
	// is returned together with [ErrServiceUnavailable].
	Health(ctx context.Context) (models.SessionStatus, error)

	// Version returns the bridge build version.
	Version(ctx context.Context) (string, error)
}
