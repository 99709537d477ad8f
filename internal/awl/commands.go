// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package awl

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-awl-bridge/models"
)

// Command names.
const (
	CmdLogin = "login"
	CmdRead  = "read"
)

// gatewayRList is the register list requested by every gateway read, as
// issued by the Symphony consumer dashboard.
var gatewayRList = []string{
	"ActualCompressorSpeed",
	"AirflowCurrentSpeed",
	"AOCEnteringWaterTemp",
	"AuroraOutputCC",
	"AuroraOutputCC2",
	"AuroraOutputEH1",
	"AuroraOutputEH2",
	"auroraoutputrv",
	"auxpower",
	"AWLABCType",
	"AWLTStatType",
	"compressorpower",
	"dehumid_humid_sp",
	"EnteringWaterTemp",
	"fanpower",
	"homeautomationalarm1",
	"homeautomationalarm2",
	"humidity_offset_settings",
	"iz2_dehumid_humid_sp",
	"iz2_humidity_offset_settings",
	"lastfault",
	"lastlockout",
	"LeavingAirTemp",
	"lockoutstatus",
	"looppumppower",
	"ModeOfOperation",
	"totalunitpower",
	"TStatActiveSetpoint",
	"TStatCoolingSetpoint",
	"TStatDehumidSetpoint",
	"TStatHeatingSetpoint",
	"TStatMode",
	"TStatRelativeHumidity",
	"TStatRoomTemp",
}

// ReadList returns the register list for a gateway with maxZones
// IntelliZone 2 zones. The result is a new slice on every call.
func ReadList(maxZones int) []string {
	rlist := slices.Clone(gatewayRList)
	for zone := 1; zone <= maxZones; zone++ {
		rlist = append(rlist,
			fmt.Sprintf("iz2_z%d_roomtemp", zone),
			fmt.Sprintf("iz2_z%d_activesettings", zone),
		)
	}
	return rlist
}

// Login authenticates the connection with a Symphony sessionid. Pending
// transactions are cancelled and ids restart at 1. The returned login data
// is kept for LoginData and Read.
func (c *Conn) Login(ctx context.Context, sessionID string) (models.LoginData, error) {
	c.resetTransactions()

	raw, err := c.Do(ctx, CmdLogin, map[string]any{"sessionid": sessionID})
	if err != nil {
		return models.LoginData{}, fmt.Errorf("awl login: %w", err)
	}

	data, err := DecodeLoginData(raw)
	if err != nil {
		return models.LoginData{}, err
	}

	c.loginMu.Lock()
	c.loginData = &data
	c.loginMu.Unlock()

	return data, nil
}

// LoginData returns the data of the last successful Login, or false before
// it and after the connection closed.
func (c *Conn) LoginData() (models.LoginData, bool) {
	c.loginMu.RLock()
	defer c.loginMu.RUnlock()

	if c.loginData == nil {
		return models.LoginData{}, false
	}
	return *c.loginData, true
}

// GatewayParam returns the raw login-data field key of gateway gwid.
func (c *Conn) GatewayParam(gwid, key string) (any, bool) {
	data, ok := c.LoginData()
	if !ok {
		return nil, false
	}

	locations, _ := data.Raw["locations"].([]any)
	for _, l := range locations {
		location, _ := l.(map[string]any)
		gateways, _ := location["gateways"].([]any)
		for _, g := range gateways {
			gateway, _ := g.(map[string]any)
			if id, _ := gateway["gwid"].(string); id == gwid {
				v, found := gateway[key]
				return v, found
			}
		}
	}

	return nil, false
}

// Read requests the gateway register list, extended by the zone registers
// of every IntelliZone 2 zone the gateway reports.
func (c *Conn) Read(ctx context.Context, gwid string) (models.Reading, error) {
	data, ok := c.LoginData()
	if !ok {
		return nil, ErrNotLoggedIn
	}

	var maxZones int
	if gateway, found := data.Gateway(gwid); found {
		maxZones = gateway.MaxZones
	}

	raw, err := c.Do(ctx, CmdRead, map[string]any{
		"awlid": gwid,
		"zone":  0,
		"rlist": ReadList(maxZones),
	})
	if err != nil {
		return nil, fmt.Errorf("awl read %s: %w", gwid, err)
	}

	var reading models.Reading
	if err = json.Unmarshal(raw, &reading); err != nil {
		return nil, fmt.Errorf("decode awl read response: %w", err)
	}

	return reading, nil
}

// DecodeLoginData decodes a login response, keeping the raw object as well.
// The typed view is built leniently from the raw object: fields of an
// unexpected type are left empty instead of failing the login.
func DecodeLoginData(raw json.RawMessage) (models.LoginData, error) {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return models.LoginData{}, fmt.Errorf("decode awl login data: %w", err)
	}

	data := models.LoginData{Raw: obj}

	locations, _ := obj["locations"].([]any)
	for _, l := range locations {
		lm, ok := l.(map[string]any)
		if !ok {
			continue
		}

		location := models.Location{Description: fieldString(lm["description"])}
		gateways, _ := lm["gateways"].([]any)
		for _, g := range gateways {
			gm, ok := g.(map[string]any)
			if !ok {
				continue
			}
			location.Gateways = append(location.Gateways, decodeGateway(gm))
		}

		data.Locations = append(data.Locations, location)
	}

	return data, nil
}

func decodeGateway(gm map[string]any) models.Gateway {
	gateway := models.Gateway{
		GWID:        fieldString(gm["gwid"]),
		Description: fieldString(gm["description"]),
		MaxZones:    fieldInt(gm["iz2_max_zones"]),
	}

	names, ok := gm["tstat_names"].(map[string]any)
	if !ok {
		return gateway
	}

	gateway.ThermostatNames = make(map[string]*string, len(names))
	for key, v := range names {
		switch v.(type) {
		case string, float64, bool:
			name := fieldString(v)
			gateway.ThermostatNames[key] = &name
		default:
			// null and non-scalar names mark an unused zone slot
			gateway.ThermostatNames[key] = nil
		}
	}

	return gateway
}

// fieldString formats scalar JSON values; anything else is empty.
func fieldString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}

// fieldInt accepts JSON numbers and numeric strings; anything else is zero.
func fieldInt(v any) int {
	switch value := v.(type) {
	case float64:
		return int(value)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// redact masks the session id of login frames for logging. The result is
// always valid JSON.
func redact(frame []byte) []byte {
	var payload map[string]any
	if err := json.Unmarshal(frame, &payload); err != nil {
		quoted, _ := json.Marshal(string(frame))
		return quoted
	}

	if _, ok := payload["sessionid"]; !ok {
		return frame
	}
	payload["sessionid"] = "***"

	masked, err := json.Marshal(payload)
	if err != nil {
		return frame
	}
	return masked
}
