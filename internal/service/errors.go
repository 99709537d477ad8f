// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-awl-bridge/internal/validators"
)

var (
	// ErrNotConnected is returned while no AWL session is established.
	ErrNotConnected = errors.New("awl api not connected")
	// ErrSessionNotStarted is returned by Reconnect before Start succeeded.
	ErrSessionNotStarted = errors.New("awl session is not started")

	ErrZoneNotFound  = errors.New("zone not found")
	ErrAmbiguousZone = errors.New("zone id matches more than one zone")

	ErrCommandNotAllowed = validators.ErrCommandNotAllowed
	ErrNoGatewayID       = validators.ErrNoGatewayID

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
