// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidSymphonyConfigs indicates missing portal credentials or
	// endpoints.
	ErrInvalidSymphonyConfigs = errors.New("invalid waterfurnace configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAWLConfigs indicates invalid AWL session timeouts.
	ErrInvalidAWLConfigs = errors.New("invalid awl configuration")
	// ErrInvalidAdapterConfigs indicates invalid monitor adapter settings
	// (for example, missing bridge address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates a DSN whose driver is unknown.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidTokenConfigs indicates that tokens cannot be minted because
	// the sign key is missing.
	ErrInvalidTokenConfigs = errors.New("invalid token configuration")
	// ErrInvalidLogConfigs indicates invalid logging settings.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
