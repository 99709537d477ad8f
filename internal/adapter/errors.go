// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Symphony portal errors.
var (
	ErrSymphonyUnavailable  = errors.New("symphony portal unavailable")
	ErrLoginFailed          = errors.New("symphony login failed")
	ErrNoSession            = errors.New("symphony did not issue a session")
	ErrLogoutFailed         = errors.New("symphony logout failed")
	ErrWebsocketURINotFound = errors.New("awl websocket uri not found")
)

// Bridge API errors, mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")
)
