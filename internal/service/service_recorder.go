// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/internal/store"
	"github.com/MKhiriev/go-awl-bridge/internal/validators"
	"github.com/MKhiriev/go-awl-bridge/models"
)

const (
	DefaultHistoryLimit = 100
	MaxHistoryLimit     = 1000
)

type recorderService struct {
	readings  store.ReadingRepository
	gateways  GatewayService
	validator validators.Validator

	now func() time.Time

	logger *logger.Logger
}

// NewRecorderService constructs a [RecorderService]. A nil readings
// repository yields a disabled recorder whose methods return
// [store.ErrStorageDisabled].
func NewRecorderService(readings store.ReadingRepository, gateways GatewayService, log *logger.Logger) RecorderService {
	return &recorderService{
		readings:  readings,
		gateways:  gateways,
		validator: validators.NewRequestValidator(nil),
		now:       time.Now,
		logger:    log,
	}
}

// Enabled implements [RecorderService].
func (s *recorderService) Enabled() bool {
	return s.readings != nil
}

// RecordGateway implements [RecorderService]. The record is stamped with the
// current time truncated to the second.
func (s *recorderService) RecordGateway(ctx context.Context, gwid string) (models.ReadingRecord, error) {
	if !s.Enabled() {
		return models.ReadingRecord{}, store.ErrStorageDisabled
	}

	reading, err := s.gateways.ReadGateway(ctx, gwid)
	if err != nil {
		return models.ReadingRecord{}, err
	}

	record := models.NewReadingRecord(gwid, s.now().Truncate(time.Second), reading)
	return s.readings.SaveReading(ctx, record)
}

// RecordAll implements [RecorderService]. A failing gateway does not stop
// the others; all failures are joined into the returned error. Duplicates
// are skipped silently.
func (s *recorderService) RecordAll(ctx context.Context) (int, error) {
	if !s.Enabled() {
		return 0, store.ErrStorageDisabled
	}

	gateways, err := s.gateways.ListGateways(ctx)
	if err != nil {
		return 0, err
	}

	log := logger.FromContextOr(ctx, s.logger)

	var (
		saved int
		errs  []error
	)
	for _, gateway := range gateways {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		_, err = s.RecordGateway(ctx, gateway.GWID)
		switch {
		case err == nil:
			saved++
		case errors.Is(err, store.ErrReadingAlreadyExists):
			log.Debug().Str("func", "*recorderService.RecordAll").Str("gwid", gateway.GWID).Msg("reading already recorded")
		default:
			log.Err(err).Str("func", "*recorderService.RecordAll").Str("gwid", gateway.GWID).Msg("error recording gateway")
			errs = append(errs, err)
		}
	}

	return saved, errors.Join(errs...)
}

// History implements [RecorderService]. A zero limit means
// [DefaultHistoryLimit]; larger limits are capped at [MaxHistoryLimit].
func (s *recorderService) History(ctx context.Context, req models.HistoryRequest) ([]models.ReadingRecord, error) {
	if !s.Enabled() {
		return nil, store.ErrStorageDisabled
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return nil, err
	}

	switch {
	case req.Limit == 0:
		req.Limit = DefaultHistoryLimit
	case req.Limit > MaxHistoryLimit:
		req.Limit = MaxHistoryLimit
	}

	return s.readings.ListReadings(ctx, req)
}

// Prune implements [RecorderService].
func (s *recorderService) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	if !s.Enabled() {
		return 0, store.ErrStorageDisabled
	}

	before := s.now().Add(-retention)
	deleted, err := s.readings.PruneReadings(ctx, before)
	if err != nil {
		return 0, err
	}

	logger.FromContextOr(ctx, s.logger).Debug().
		Str("func", "*recorderService.Prune").
		Int64("deleted", deleted).
		Time("before", before).
		Msg("pruned readings")

	return deleted, nil
}
