// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-awl-bridge/internal/config"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
)

// Storages groups the repositories of the bridge. With no DSN configured
// every repository is nil and [Storages.Enabled] reports false.
type Storages struct {
	ReadingRepository ReadingRepository

	db *DB
}

// NewStorages opens the configured database and builds its repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Str("func", "NewStorages").Msg("no database configured, reading history disabled")
		return &Storages{}, nil
	}

	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		ReadingRepository: NewReadingRepository(db, log),
		db:                db,
	}, nil
}

// Enabled reports whether a database backs the repositories.
func (s *Storages) Enabled() bool {
	return s != nil && s.db != nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if !s.Enabled() {
		return nil
	}
	return s.db.Close()
}
