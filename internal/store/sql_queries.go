// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-awl-bridge/models"
)

const readingsTable = "readings"

// readingColumns is the column order shared by inserts and selects.
var readingColumns = []string{
	"gwid",
	"recorded_at",
	"compressor_speed",
	"entering_water_temp",
	"leaving_air_temp",
	"room_temp",
	"heating_setpoint",
	"cooling_setpoint",
	"relative_humidity",
	"total_unit_power",
	"mode_of_operation",
	"thermostat_mode",
}

func buildInsertReadingQuery(b sq.StatementBuilderType, r models.ReadingRecord) (string, []any, error) {
	return b.Insert(readingsTable).
		Columns(readingColumns...).
		Values(
			r.GWID,
			r.RecordedAt.UTC(),
			r.CompressorSpeed,
			r.EnteringWaterTemp,
			r.LeavingAirTemp,
			r.RoomTemp,
			r.HeatingSetpoint,
			r.CoolingSetpoint,
			r.RelativeHumidity,
			r.TotalUnitPower,
			r.ModeOfOperation,
			r.ThermostatMode,
		).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectReadingsQuery(b sq.StatementBuilderType, req models.HistoryRequest) (string, []any, error) {
	query := b.Select(append([]string{"id"}, readingColumns...)...).
		From(readingsTable).
		Where(sq.Eq{"gwid": req.GWID}).
		OrderBy("recorded_at DESC")

	if !req.Since.IsZero() {
		query = query.Where(sq.GtOrEq{"recorded_at": req.Since.UTC()})
	}
	if req.Limit > 0 {
		query = query.Limit(req.Limit)
	}

	return query.ToSql()
}

func buildDeleteReadingsQuery(b sq.StatementBuilderType, before time.Time) (string, []any, error) {
	return b.Delete(readingsTable).
		Where(sq.Lt{"recorded_at": before.UTC()}).
		ToSql()
}
