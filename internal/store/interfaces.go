// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-awl-bridge/models"
)

// ReadingRepository persists typed gateway readings.
type ReadingRepository interface {
	// SaveReading stores a record and returns it with the assigned ID.
	// A second record for the same gateway and timestamp fails with
	// [ErrReadingAlreadyExists].
	SaveReading(ctx context.Context, record models.ReadingRecord) (models.ReadingRecord, error)

	// ListReadings returns the newest records of one gateway first.
	// A zero Since lists from the beginning, a zero Limit returns every row.
	ListReadings(ctx context.Context, req models.HistoryRequest) ([]models.ReadingRecord, error)

	// PruneReadings removes records older than before and reports how many
	// rows were deleted.
	PruneReadings(ctx context.Context, before time.Time) (int64, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
