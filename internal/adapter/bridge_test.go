// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-awl-bridge/internal/config"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBridge(t *testing.T, h http.HandlerFunc, token string) BridgeAdapter {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	a, err := NewHTTPBridgeAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
		Token:          token,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ── normalizeBaseURL ──

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8000", want: "http://localhost:8000"},
		{in: "https://bridge.local/", want: "https://bridge.local"},
		{in: "  http://127.0.0.1:5000  ", want: "http://127.0.0.1:5000"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── ListZones ──

func TestBridgeListZones_Success(t *testing.T) {
	want := []models.Zone{{Location: "Home", GWID: "gw1", SystemName: "Basement", ZoneID: 1, ZoneName: "Upstairs"}}

	a := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/zones", r.URL.Path)
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, want)
	}, "tkn")

	got, err := a.ListZones(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBridgeListZones_Unauthorized(t *testing.T) {
	a := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "token expired"})
	}, "")

	_, err := a.ListZones(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "token expired")
}

// ── ListGateways / ReadGateway ──

func TestBridgeListGateways(t *testing.T) {
	a := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gateways", r.URL.Path)
		writeJSON(w, http.StatusOK, []models.GatewaySummary{{GWID: "gw1"}, {GWID: "gw2"}})
	}, "")

	got, err := a.ListGateways(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestBridgeReadGateway_Timeout(t *testing.T) {
	a := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gateways/gw1", r.URL.Path)
		writeJSON(w, http.StatusGatewayTimeout, map[string]any{"message": "AWL read timed out"})
	}, "")

	_, err := a.ReadGateway(context.Background(), "gw1")

	assert.ErrorIs(t, err, ErrGatewayTimeout)
}

func TestBridgeReadGateway_Success(t *testing.T) {
	a := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"TStatRoomTemp": 70.5, "tid": 3})
	}, "")

	got, err := a.ReadGateway(context.Background(), "gw1")

	require.NoError(t, err)
	temp, ok := got.Float("TStatRoomTemp")
	assert.True(t, ok)
	assert.Equal(t, 70.5, temp)
}

// ── ZoneDetails ──

func TestBridgeZoneDetails(t *testing.T) {
	a := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gateways/gw1/zones/2/details", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{"roomtemp": 68.0, "heatingsp_actual": 67.0})
	}, "")

	got, err := a.ZoneDetails(context.Background(), "gw1", 2)

	require.NoError(t, err)
	assert.Equal(t, 68.0, got["roomtemp"])
}

func TestBridgeZoneDetails_NotFound(t *testing.T) {
	a := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "The gateway gw1 does not have a zone 9", http.StatusNotFound)
	}, "")

	_, err := a.ZoneDetails(context.Background(), "gw1", 9)

	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "does not have a zone 9")
}

// ── History ──

func TestBridgeHistory_QueryParams(t *testing.T) {
	since := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	a := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gateways/gw1/history", r.URL.Path)
		assert.Equal(t, "2026-01-02T03:04:05Z", r.URL.Query().Get("since"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, []models.ReadingRecord{{ID: 1, GWID: "gw1", RecordedAt: since}})
	}, "")

	got, err := a.History(context.Background(), "gw1", since, 50)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, since.Equal(got[0].RecordedAt))
}

func TestBridgeHistory_NoParams(t *testing.T) {
	a := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		writeJSON(w, http.StatusOK, []models.ReadingRecord{})
	}, "")

	got, err := a.History(context.Background(), "gw1", time.Time{}, 0)

	require.NoError(t, err)
	assert.Empty(t, got)
}

// ── Health / Version ──

func TestBridgeHealth_Disconnected(t *testing.T) {
	a := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, models.SessionStatus{State: models.SessionDisconnected, Reconnects: 3})
	}, "")

	status, err := a.Health(context.Background())

	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.Equal(t, models.SessionDisconnected, status.State)
	assert.Equal(t, 3, status.Reconnects)
}

func TestBridgeHealth_Connected(t *testing.T) {
	a := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.SessionStatus{State: models.SessionConnected})
	}, "")

	status, err := a.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.SessionConnected, status.State)
}

func TestBridgeVersion(t *testing.T) {
	a := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("v1.2.3\n"))
	}, "")

	v, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", v)
}

func TestBridge_UnexpectedStatus(t *testing.T) {
	a := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}, "")

	_, err := a.Version(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
