package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-awl-bridge/internal/utils"
	"github.com/MKhiriev/go-awl-bridge/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "go-awl-bridge"
)

func authSettings() Settings {
	return Settings{TokenSignKey: testSignKey, TokenIssuer: testIssuer, RequestTimeout: time.Second}
}

func bearer(t *testing.T, signKey string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, "monitor", time.Hour, signKey)
	require.NoError(t, err)
	return "Bearer " + token.String()
}

// ---- Public routes are reachable with auth enabled ----

func TestInit_PublicRoutes(t *testing.T) {
	h, m := newTestHandler(t, authSettings())
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").AnyTimes()
	m.session.EXPECT().Status().Return(models.SessionStatus{State: models.SessionConnected}).AnyTimes()

	for _, path := range []string{"/api/version/", "/api/health"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(t, h, path)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

// ---- Protected routes ----

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	h, _ := newTestHandler(t, authSettings())

	paths := []string{
		"/zones",
		"/gateways",
		"/gateways/GW1",
		"/gateways/GW1/zones",
		"/gateways/GW1/zones/1",
		"/gateways/GW1/zones/1/details",
		"/gateways/GW1/history",
		"/ws",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec := serve(t, h, path)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_ProtectedRoutes_Token(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "valid token", header: bearer(t, testSignKey), want: http.StatusOK},
		{name: "wrong sign key", header: bearer(t, "other-key"), want: http.StatusUnauthorized},
		{name: "not a bearer header", header: "Basic dXNlcjpwYXNz", want: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, authSettings())
			m.gateways.EXPECT().ListZones(gomock.Any()).Return([]models.Zone{}, nil).MaxTimes(1)

			req := httptest.NewRequest(http.MethodGet, "/zones", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()
			h.Init().ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestInit_AuthDisabledWithoutSignKey(t *testing.T) {
	h, m := newTestHandler(t, Settings{})
	m.gateways.EXPECT().ListZones(gomock.Any()).Return([]models.Zone{}, nil)

	rec := serve(t, h, "/zones")

	assert.Equal(t, http.StatusOK, rec.Code)
}

// ---- Method and path handling ----

func TestInit_UnsupportedMethodIs404(t *testing.T) {
	h, _ := newTestHandler(t, Settings{})
	router := h.Init()

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		for _, path := range []string{"/zones", "/gateways/GW1"} {
			t.Run(method+" "+path, func(t *testing.T) {
				rec := httptest.NewRecorder()
				router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
				assert.Equal(t, http.StatusNotFound, rec.Code)
			})
		}
	}
}

func TestInit_UnknownPath(t *testing.T) {
	h, _ := newTestHandler(t, Settings{})

	rec := serve(t, h, "/thermostats")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_SetsTraceID(t *testing.T) {
	h, m := newTestHandler(t, Settings{})
	m.gateways.EXPECT().ListZones(gomock.Any()).Return([]models.Zone{}, nil)

	rec := serve(t, h, "/zones")

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
