// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SessionState describes where the AWL session keeper currently is.
type SessionState string

const (
	SessionDisconnected SessionState = "disconnected"
	SessionConnecting   SessionState = "connecting"
	SessionConnected    SessionState = "connected"
	SessionStopped      SessionState = "stopped"
)

// SessionStatus is returned by GET /api/health.
type SessionStatus struct {
	State       SessionState `json:"state"`
	ConnectedAt time.Time    `json:"connected_at,omitzero"`
	Reconnects  int          `json:"reconnects"`
	LastError   string       `json:"last_error,omitempty"`
}
