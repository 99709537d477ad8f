// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Symphony.User) == "" || cfg.Symphony.Password == "" {
		return fmt.Errorf("%w: WATERFURNACE_USER and WATERFURNACE_PASSWORD are required", ErrInvalidSymphonyConfigs)
	}
	if cfg.Symphony.LoginURL == "" || cfg.Symphony.ConfigURL == "" {
		return fmt.Errorf("%w: login and config URLs are required", ErrInvalidSymphonyConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: listen address is required", ErrInvalidServerConfigs)
	}

	if cfg.AWL.TransactionTimeout < 0 {
		return fmt.Errorf("%w: transaction timeout must not be negative", ErrInvalidAWLConfigs)
	}

	if cfg.Workers.PollInterval < 0 || cfg.Workers.Retention < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Storage.DB.DSN != "" {
		if _, err := DriverFromDSN(cfg.Storage.DB.DSN); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
		}
	}

	if cfg.Log.Directory == "" {
		return fmt.Errorf("%w: log directory is required", ErrInvalidLogConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// Supported database drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DriverFromDSN returns the database/sql driver name for dsn.
func DriverFromDSN(dsn string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres, nil
	case strings.HasPrefix(lower, "file:"),
		strings.HasSuffix(lower, ".db"),
		strings.HasSuffix(lower, ".sqlite"),
		strings.HasSuffix(lower, ".sqlite3"),
		lower == ":memory:":
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("cannot determine database driver for dsn %q", dsn)
	}
}
