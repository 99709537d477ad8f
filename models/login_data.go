// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginData is the payload returned by the AWL "login" command. It describes
// every location registered to the Symphony account together with the
// gateways (heat pumps) installed there.
type LoginData struct {
	// Locations lists the account's sites in the order AWL returned them.
	Locations []Location `json:"locations"`

	// Raw keeps the original decoded response so that callers asking for the
	// unprocessed login data (GET /gateways?raw) get every vendor field.
	Raw map[string]any `json:"-"`
}

// Location is a physical site of the account.
type Location struct {
	// Description is the user-assigned site name (e.g. "Home").
	Description string `json:"description"`

	// Gateways lists the AWL devices installed at the location.
	Gateways []Gateway `json:"gateways"`
}

// Gateway is an Aurora Web Link device. GWID is the identifier used both as
// the AWL "awlid" read parameter and as the Symphony gwid cookie.
type Gateway struct {
	GWID        string `json:"gwid"`
	Description string `json:"description"`

	// MaxZones is the number of IntelliZone 2 zones the gateway controls.
	// Zero for single-zone systems.
	MaxZones int `json:"iz2_max_zones"`

	// ThermostatNames maps zone keys ("z1", "z2", ...) to zone names. A nil
	// name marks an unused zone slot.
	ThermostatNames map[string]*string `json:"tstat_names"`
}

// Gateway returns the gateway with the given id and reports whether it was
// found.
func (d LoginData) Gateway(gwid string) (Gateway, bool) {
	for _, location := range d.Locations {
		for _, gateway := range location.Gateways {
			if gateway.GWID == gwid {
				return gateway, true
			}
		}
	}
	return Gateway{}, false
}

// GatewayIDs returns every gateway id of the account in login-data order.
func (d LoginData) GatewayIDs() []string {
	ids := make([]string, 0, 4)
	for _, location := range d.Locations {
		for _, gateway := range location.Gateways {
			if gateway.GWID != "" {
				ids = append(ids, gateway.GWID)
			}
		}
	}
	return ids
}
