// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GatewaySummary is the flattened view of a gateway returned by GET /gateways.
type GatewaySummary struct {
	Location   string `json:"location"`
	GWID       string `json:"gwid"`
	SystemName string `json:"system_name"`
}

// Zone is one thermostat zone of a gateway as returned by GET /zones.
type Zone struct {
	Location   string `json:"location"`
	GWID       string `json:"gwid"`
	SystemName string `json:"system_name"`
	ZoneID     int    `json:"zoneid"`
	ZoneName   string `json:"zone_name"`
}

// ZoneDetails is the zone-specific part of a gateway reading with the
// "iz2_z<N>_" prefix stripped and the active settings lifted to the top level.
type ZoneDetails map[string]any
