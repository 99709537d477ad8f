// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/models"
)

const (
	retryAttempts = 2
	retryInterval = 100 * time.Millisecond
)

// readingRepository is the SQL-backed implementation of [ReadingRepository].
// It stores typed readings in the "readings" table.
type readingRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewReadingRepository constructs a [ReadingRepository] backed by db.
func NewReadingRepository(db *DB, logger *logger.Logger) ReadingRepository {
	logger.Debug().Msg("creating reading repository")
	return &readingRepository{
		db:     db,
		logger: logger,
	}
}

// SaveReading inserts record and returns it with the database-assigned ID.
//
// Error handling:
//   - unique violation on (gwid, recorded_at) → [ErrReadingAlreadyExists].
//   - transient driver errors are retried twice.
//   - anything else → wrapped [ErrExecutingStatement].
func (r *readingRepository) SaveReading(ctx context.Context, record models.ReadingRecord) (models.ReadingRecord, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildInsertReadingQuery(r.db.builder, record)
	if err != nil {
		log.Err(err).Str("func", "*readingRepository.SaveReading").Msg("error building query")
		return models.ReadingRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		if r.db.isUniqueViolation(err) {
			return models.ReadingRecord{}, ErrReadingAlreadyExists
		}
		log.Err(err).Str("func", "*readingRepository.SaveReading").Str("gwid", record.GWID).Msg("error saving reading")
		return models.ReadingRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	record.ID = id
	record.RecordedAt = record.RecordedAt.UTC()
	return record, nil
}

// ListReadings returns the records of req.GWID newest first.
func (r *readingRepository) ListReadings(ctx context.Context, req models.HistoryRequest) ([]models.ReadingRecord, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildSelectReadingsQuery(r.db.builder, req)
	if err != nil {
		log.Err(err).Str("func", "*readingRepository.ListReadings").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*readingRepository.ListReadings").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.ReadingRecord, 0)
	for rows.Next() {
		var rec models.ReadingRecord
		if err = rows.Scan(
			&rec.ID,
			&rec.GWID,
			&rec.RecordedAt,
			&rec.CompressorSpeed,
			&rec.EnteringWaterTemp,
			&rec.LeavingAirTemp,
			&rec.RoomTemp,
			&rec.HeatingSetpoint,
			&rec.CoolingSetpoint,
			&rec.RelativeHumidity,
			&rec.TotalUnitPower,
			&rec.ModeOfOperation,
			&rec.ThermostatMode,
		); err != nil {
			log.Err(err).Str("func", "*readingRepository.ListReadings").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		rec.RecordedAt = rec.RecordedAt.UTC()
		rec.FillModeNames()
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*readingRepository.ListReadings").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// PruneReadings deletes every record recorded strictly before before.
func (r *readingRepository) PruneReadings(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildDeleteReadingsQuery(r.db.builder, before)
	if err != nil {
		log.Err(err).Str("func", "*readingRepository.PruneReadings").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.withRetry(ctx, func(ctx context.Context) error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*readingRepository.PruneReadings").Msg("error pruning readings")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// withRetry runs fn again while the classifier reports the error as
// transient.
func (r *readingRepository) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(retryAttempts, retry.NewConstant(retryInterval))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && r.db.errorClassificator.Classify(err) == Retryable {
			return retry.RetryableError(err)
		}
		return err
	})
}
