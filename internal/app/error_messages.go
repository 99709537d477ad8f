// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// bridge handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, relay frames or log entries to describe the outcome
// of an operation. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgInternalServerError replaces the message of every 5xx response
	// that is not a gateway timeout or an AWL availability error. The cause
	// is only logged.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature or issuer).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgInvalidRelayFrame is sent to a relay client whose frame is not a
	// JSON command object.
	MsgInvalidRelayFrame = "invalid request frame"
)
