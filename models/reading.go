// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Reading is the raw response of the AWL "read" command: a flat object whose
// keys are the requested register names.
type Reading map[string]any

// Float returns the numeric value stored under key. Keys are matched
// case-insensitively because AWL echoes register names in lower case while
// the request list mixes cases.
func (r Reading) Float(key string) (float64, bool) {
	v, ok := r.lookup(key)
	if !ok {
		return 0, false
	}

	switch value := v.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	case json.Number:
		f, err := value.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Int returns the integer value stored under key.
func (r Reading) Int(key string) (int, bool) {
	f, ok := r.Float(key)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// String returns the value stored under key formatted as a string.
func (r Reading) String(key string) (string, bool) {
	v, ok := r.lookup(key)
	if !ok || v == nil {
		return "", false
	}
	if s, isString := v.(string); isString {
		return s, true
	}
	return fmt.Sprint(v), true
}

// Zone extracts the values that belong to the given IntelliZone 2 zone. Keys
// carrying the "iz2_z<id>_" prefix are selected, the nested "activesettings"
// object is merged into the top level first, and the prefix is stripped.
// Values stored directly under a key override those from activesettings.
// The second result is false when the reading has no key for the zone.
func (r Reading) Zone(zoneID int) (ZoneDetails, bool) {
	prefix := fmt.Sprintf("iz2_z%d_", zoneID)
	activeKey := prefix + "activesettings"

	raw := make(map[string]any)
	for key, value := range r {
		if strings.HasPrefix(key, prefix) {
			raw[key] = value
		}
	}
	if len(raw) == 0 {
		return nil, false
	}

	details := make(ZoneDetails, len(raw))
	if active, ok := raw[activeKey].(map[string]any); ok {
		for key, value := range active {
			details[key] = value
		}
	}
	delete(raw, activeKey)

	for key, value := range raw {
		details[strings.Replace(key, prefix, "", 1)] = value
	}

	return details, true
}

func (r Reading) lookup(key string) (any, bool) {
	if v, ok := r[key]; ok {
		return v, true
	}
	lower := strings.ToLower(key)
	for k, v := range r {
		if strings.ToLower(k) == lower {
			return v, true
		}
	}
	return nil, false
}
