// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-awl-bridge/internal/config"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/migrations"
)

// DB wraps a *sql.DB together with the driver-specific pieces the
// repositories need: the query builder placeholder format and the error
// classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the database named by cfg.DSN, selecting pgx or sqlite3 from
// the DSN form, pings it and applies the embedded migrations.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver, err := config.DriverFromDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	dsn := cfg.DSN
	if driver == config.DriverSQLite {
		if err = createLocalDBDirIfNotExists(dsn); err != nil {
			log.Err(err).Str("func", "NewDB").Msg("error creating database directory")
			return nil, err
		}
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	if driver == config.DriverSQLite {
		// a single writer avoids SQLITE_BUSY between the poller and the pruner
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(4)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}

	if err = migrations.Migrate(conn, driver); err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error applying migrations")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewDB").Str("driver", driver).Msg("connected to database successfully")

	return newDB(conn, driver, log), nil
}

func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	switch driver {
	case config.DriverSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// Driver returns the database/sql driver name the connection was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// isUniqueViolation reports whether err is a unique constraint failure for
// either supported driver.
func (db *DB) isUniqueViolation(err error) bool {
	if db.driver == config.DriverSQLite {
		return isSQLiteUniqueViolation(err)
	}
	return postgresError(err) == pgerrcode.UniqueViolation
}

func createLocalDBDirIfNotExists(dsn string) error {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating DB directory: %w", err)
	}

	return nil
}
