// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-awl-bridge/internal/adapter"
)

// ErrUserQuit is returned by [TUI.Run] when the user leaves the monitor.
var ErrUserQuit = errors.New("user quit")

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Bridge rejected the token"
	case errors.Is(err, adapter.ErrGatewayTimeout):
		return "Gateway did not answer in time"
	case errors.Is(err, adapter.ErrServiceUnavailable):
		return "Bridge is not connected to AWL"
	case errors.Is(err, adapter.ErrNotFound):
		return "Not found on the bridge"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the bridge is unavailable"
	}

	return err.Error()
}
