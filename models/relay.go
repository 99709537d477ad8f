// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// RelayRequest is a command frame sent by a WebSocket client of the bridge.
// It mirrors the AWL wire format; TID is the client's own transaction id and
// is echoed back unchanged.
type RelayRequest struct {
	Cmd   string `json:"cmd"`
	TID   int    `json:"tid"`
	AWLID string `json:"awlid,omitempty"`
}

// RelayResponse is the frame written back to a relay client. Exactly one of
// Data or Err is set.
type RelayResponse struct {
	TID  int             `json:"tid"`
	Cmd  string          `json:"cmd,omitempty"`
	Data json.RawMessage `json:"data,omitempty"`
	Err  string          `json:"err,omitempty"`
}
