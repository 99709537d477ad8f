// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of
	// the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Request parameter errors, answered with 400 Bad Request.
var (
	ErrInvalidSince = errors.New("since must be an RFC 3339 timestamp")
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)

// errInvalidZoneID is answered with 404, a zone id that is not an integer
// names no zone.
var errInvalidZoneID = errors.New("zone id must be an integer")
