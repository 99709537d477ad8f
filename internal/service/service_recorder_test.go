// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/internal/mock"
	"github.com/MKhiriev/go-awl-bridge/internal/store"
	"github.com/MKhiriev/go-awl-bridge/internal/validators"
	"github.com/MKhiriev/go-awl-bridge/models"
)

var recorderNow = time.Date(2026, 3, 1, 12, 30, 15, 999, time.UTC)

func newTestRecorder(t *testing.T) (*recorderService, *mock.MockReadingRepository, *mock.MockGatewayService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	readings := mock.NewMockReadingRepository(ctrl)
	gateways := mock.NewMockGatewayService(ctrl)

	svc := NewRecorderService(readings, gateways, logger.Nop()).(*recorderService)
	svc.now = func() time.Time { return recorderNow }
	return svc, readings, gateways
}

// ── disabled ──

func TestRecorderService_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewRecorderService(nil, mock.NewMockGatewayService(ctrl), logger.Nop())
	ctx := context.Background()

	assert.False(t, svc.Enabled())

	_, err := svc.RecordGateway(ctx, "GW1")
	assert.ErrorIs(t, err, store.ErrStorageDisabled)

	_, err = svc.RecordAll(ctx)
	assert.ErrorIs(t, err, store.ErrStorageDisabled)

	_, err = svc.History(ctx, models.HistoryRequest{GWID: "GW1"})
	assert.ErrorIs(t, err, store.ErrStorageDisabled)

	_, err = svc.Prune(ctx, time.Hour)
	assert.ErrorIs(t, err, store.ErrStorageDisabled)
}

// ── RecordGateway ──

func TestRecorderService_RecordGateway(t *testing.T) {
	svc, readings, gateways := newTestRecorder(t)

	gateways.EXPECT().ReadGateway(gomock.Any(), "GW1").Return(models.Reading{
		"TStatRoomTemp":   71.5,
		"ModeOfOperation": 5.0,
	}, nil)
	readings.EXPECT().SaveReading(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.ReadingRecord) (models.ReadingRecord, error) {
			assert.Equal(t, "GW1", r.GWID)
			assert.Equal(t, recorderNow.Truncate(time.Second), r.RecordedAt)
			require.NotNil(t, r.RoomTemp)
			assert.Equal(t, 71.5, *r.RoomTemp)
			assert.Equal(t, "Heating 1", r.ModeOfOperationName)
			r.ID = 9
			return r, nil
		})

	got, err := svc.RecordGateway(context.Background(), "GW1")
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
}

func TestRecorderService_RecordGateway_ReadError(t *testing.T) {
	svc, _, gateways := newTestRecorder(t)
	gateways.EXPECT().ReadGateway(gomock.Any(), "GW1").Return(nil, ErrNotConnected)

	_, err := svc.RecordGateway(context.Background(), "GW1")
	assert.ErrorIs(t, err, ErrNotConnected)
}

// ── RecordAll ──

func TestRecorderService_RecordAll(t *testing.T) {
	svc, readings, gateways := newTestRecorder(t)
	failure := errors.New("read failed")

	gateways.EXPECT().ListGateways(gomock.Any()).Return([]models.GatewaySummary{
		{GWID: "GW1"}, {GWID: "GW2"}, {GWID: "GW3"},
	}, nil)
	gateways.EXPECT().ReadGateway(gomock.Any(), "GW1").Return(models.Reading{}, nil)
	gateways.EXPECT().ReadGateway(gomock.Any(), "GW2").Return(nil, failure)
	gateways.EXPECT().ReadGateway(gomock.Any(), "GW3").Return(models.Reading{}, nil)

	gomock.InOrder(
		readings.EXPECT().SaveReading(gomock.Any(), gomock.Any()).Return(models.ReadingRecord{ID: 1}, nil),
		readings.EXPECT().SaveReading(gomock.Any(), gomock.Any()).Return(models.ReadingRecord{}, store.ErrReadingAlreadyExists),
	)

	saved, err := svc.RecordAll(context.Background())
	assert.Equal(t, 1, saved)
	require.Error(t, err)
	assert.ErrorIs(t, err, failure)
	assert.NotErrorIs(t, err, store.ErrReadingAlreadyExists)
}

func TestRecorderService_RecordAll_ListError(t *testing.T) {
	svc, _, gateways := newTestRecorder(t)
	gateways.EXPECT().ListGateways(gomock.Any()).Return(nil, ErrNotConnected)

	saved, err := svc.RecordAll(context.Background())
	assert.Zero(t, saved)
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestRecorderService_RecordAll_StopsOnCancel(t *testing.T) {
	svc, _, gateways := newTestRecorder(t)
	gateways.EXPECT().ListGateways(gomock.Any()).Return([]models.GatewaySummary{{GWID: "GW1"}}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	saved, err := svc.RecordAll(ctx)
	assert.Zero(t, saved)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── History / Prune ──

func TestRecorderService_History_Limits(t *testing.T) {
	tests := []struct {
		name  string
		limit uint64
		want  uint64
	}{
		{name: "default", limit: 0, want: DefaultHistoryLimit},
		{name: "explicit", limit: 5, want: 5},
		{name: "capped", limit: MaxHistoryLimit + 1, want: MaxHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, readings, _ := newTestRecorder(t)
			readings.EXPECT().
				ListReadings(gomock.Any(), models.HistoryRequest{GWID: "GW1", Limit: tt.want}).
				Return([]models.ReadingRecord{}, nil)

			got, err := svc.History(context.Background(), models.HistoryRequest{GWID: "GW1", Limit: tt.limit})
			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestRecorderService_History_InvalidRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.HistoryRequest
		wantErr error
	}{
		{name: "no gwid", req: models.HistoryRequest{}, wantErr: ErrNoGatewayID},
		{name: "future since", req: models.HistoryRequest{GWID: "GW1", Since: time.Now().Add(time.Hour)}, wantErr: validators.ErrSinceInFuture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestRecorder(t)

			_, err := svc.History(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecorderService_Prune(t *testing.T) {
	svc, readings, _ := newTestRecorder(t)
	readings.EXPECT().PruneReadings(gomock.Any(), recorderNow.Add(-24*time.Hour)).Return(int64(4), nil)

	n, err := svc.Prune(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestRecorderService_Prune_Error(t *testing.T) {
	svc, readings, _ := newTestRecorder(t)
	readings.EXPECT().PruneReadings(gomock.Any(), gomock.Any()).Return(int64(0), store.ErrExecutingStatement)

	_, err := svc.Prune(context.Background(), time.Hour)
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}
