// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ModeOfOperation is the heat pump's current operating state as reported in
// the ModeOfOperation register.
type ModeOfOperation int

// Operating states reported by Aurora controls.
const (
	ModeStandby ModeOfOperation = iota
	ModeFanOnly
	ModeCooling1
	ModeCooling2
	ModeReheat
	ModeHeating1
	ModeHeating2
	ModeEmergencyHeat
	ModeAuxHeat
	ModeLockout
)

var modeOfOperationNames = map[ModeOfOperation]string{
	ModeStandby:       "Standby",
	ModeFanOnly:       "Fan Only",
	ModeCooling1:      "Cooling 1",
	ModeCooling2:      "Cooling 2",
	ModeReheat:        "Reheat",
	ModeHeating1:      "Heating 1",
	ModeHeating2:      "Heating 2",
	ModeEmergencyHeat: "E-Heat",
	ModeAuxHeat:       "Aux Heat",
	ModeLockout:       "Lockout",
}

// String implements fmt.Stringer.
func (m ModeOfOperation) String() string {
	if name, ok := modeOfOperationNames[m]; ok {
		return name
	}
	return "Unknown"
}

// ThermostatMode is the mode selected on the thermostat (TStatMode register).
type ThermostatMode int

const (
	ThermostatOff ThermostatMode = iota
	ThermostatAuto
	ThermostatCool
	ThermostatHeat
	ThermostatEmergencyHeat
)

var thermostatModeNames = map[ThermostatMode]string{
	ThermostatOff:           "Off",
	ThermostatAuto:          "Auto",
	ThermostatCool:          "Cool",
	ThermostatHeat:          "Heat",
	ThermostatEmergencyHeat: "E-Heat",
}

// String implements fmt.Stringer.
func (m ThermostatMode) String() string {
	if name, ok := thermostatModeNames[m]; ok {
		return name
	}
	return "Unknown"
}

// ReadingRecord is a typed projection of a [Reading] that is persisted by the
// recorder and served by GET /gateways/{gwid}/history. Fields that were not
// present in the reading stay nil.
type ReadingRecord struct {
	ID         int64     `json:"id,omitempty"`
	GWID       string    `json:"gwid"`
	RecordedAt time.Time `json:"recorded_at"`

	CompressorSpeed     *float64 `json:"compressor_speed,omitempty"`
	EnteringWaterTemp   *float64 `json:"entering_water_temp,omitempty"`
	LeavingAirTemp      *float64 `json:"leaving_air_temp,omitempty"`
	RoomTemp            *float64 `json:"room_temp,omitempty"`
	HeatingSetpoint     *float64 `json:"heating_setpoint,omitempty"`
	CoolingSetpoint     *float64 `json:"cooling_setpoint,omitempty"`
	RelativeHumidity    *float64 `json:"relative_humidity,omitempty"`
	TotalUnitPower      *float64 `json:"total_unit_power,omitempty"`
	ModeOfOperation     *int     `json:"mode_of_operation,omitempty"`
	ModeOfOperationName string   `json:"mode_of_operation_name,omitempty"`
	ThermostatMode      *int     `json:"thermostat_mode,omitempty"`
	ThermostatModeName  string   `json:"thermostat_mode_name,omitempty"`
}

// NewReadingRecord maps the registers of a raw reading onto a ReadingRecord.
func NewReadingRecord(gwid string, at time.Time, r Reading) ReadingRecord {
	record := ReadingRecord{
		GWID:       gwid,
		RecordedAt: at.UTC(),

		CompressorSpeed:   floatPtr(r, "ActualCompressorSpeed"),
		EnteringWaterTemp: floatPtr(r, "EnteringWaterTemp"),
		LeavingAirTemp:    floatPtr(r, "LeavingAirTemp"),
		RoomTemp:          floatPtr(r, "TStatRoomTemp"),
		HeatingSetpoint:   floatPtr(r, "TStatHeatingSetpoint"),
		CoolingSetpoint:   floatPtr(r, "TStatCoolingSetpoint"),
		RelativeHumidity:  floatPtr(r, "TStatRelativeHumidity"),
		TotalUnitPower:    floatPtr(r, "totalunitpower"),
	}

	if mode, ok := r.Int("ModeOfOperation"); ok {
		record.ModeOfOperation = &mode
	}
	if mode, ok := r.Int("TStatMode"); ok {
		record.ThermostatMode = &mode
	}
	record.FillModeNames()

	return record
}

// FillModeNames sets the human readable names of the mode fields that are
// present.
func (r *ReadingRecord) FillModeNames() {
	if r.ModeOfOperation != nil {
		r.ModeOfOperationName = ModeOfOperation(*r.ModeOfOperation).String()
	}
	if r.ThermostatMode != nil {
		r.ThermostatModeName = ThermostatMode(*r.ThermostatMode).String()
	}
}

func floatPtr(r Reading, key string) *float64 {
	v, ok := r.Float(key)
	if !ok {
		return nil
	}
	return &v
}

// HistoryRequest holds the filter for listing recorded readings.
type HistoryRequest struct {
	GWID  string
	Since time.Time
	Limit uint64
}
