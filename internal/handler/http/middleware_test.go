package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-awl-bridge/internal/app"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/internal/utils"
)

// ─────────────────────────────────────────────
// withTraceID
// ─────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
		reused         bool
	}{
		{name: "reuses trace id from request", requestTraceID: "my-custom-trace-id", reused: true},
		{name: "generates trace id"},
		{name: "replaces id with forbidden characters", requestTraceID: `abc"}`},
		{name: "replaces oversized id", requestTraceID: strings.Repeat("a", maxTraceIDLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/zones", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			if tt.reused {
				assert.Equal(t, tt.requestTraceID, got)
			} else {
				parsed, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), parsed.Version())
			}
			assert.Contains(t, buf.String(), `"trace_id":"`+got+`"`)
		})
	}
}

// ─────────────────────────────────────────────
// withLogging
// ─────────────────────────────────────────────

func TestWithLogging_WritesAccessEntry(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{accessLogger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(traceIDHeader, "abc")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short"))
	})

	req := httptest.NewRequest(http.MethodGet, "/zones?x=1", nil)
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	for _, want := range []string{`"method":"GET"`, `"uri":"/zones?x=1"`, `"status":418`, `"size":5`, `"trace_id":"abc"`, `"duration":`} {
		assert.Contains(t, line, want)
	}
}

func TestWithLogging_FallsBackToRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/zones", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"uri":"/zones"`)
}

// ─────────────────────────────────────────────
// withGZip
// ─────────────────────────────────────────────

func TestWithGZip(t *testing.T) {
	const body = `{"TStatRoomTemp":70.5,"TStatRoomTemp2":70.5}`
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	})

	tests := []struct {
		name           string
		acceptEncoding string
		wantGzip       bool
	}{
		{name: "gzip accepted", acceptEncoding: "gzip", wantGzip: true},
		{name: "gzip among others", acceptEncoding: "deflate, gzip;q=1.0, br", wantGzip: true},
		{name: "no gzip", acceptEncoding: "", wantGzip: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/zones", nil)
			req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			rec := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rec, req)

			if !tt.wantGzip {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				assert.Equal(t, body, rec.Body.String())
				return
			}

			assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
			reader, err := gzip.NewReader(rec.Body)
			require.NoError(t, err)
			decoded, err := io.ReadAll(reader)
			require.NoError(t, err)
			assert.Equal(t, body, string(decoded))
		})
	}
}

func TestWithGZip_KeepsStatus(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, "zone not found", http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/zones", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}

// ─────────────────────────────────────────────
// auth
// ─────────────────────────────────────────────

func TestAuth_StoresClientInContext(t *testing.T) {
	h := &Handler{settings: authSettings(), logger: logger.Nop()}

	var client string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client, _ = utils.GetClientFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/zones", nil)
	req.Header.Set("Authorization", bearer(t, testSignKey))
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "monitor", client)
}

func TestAuth_MissingHeader(t *testing.T) {
	h := &Handler{settings: authSettings(), logger: logger.Nop()}
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/zones", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrEmptyAuthorizationHeader.Error())
}

func TestAuth_InvalidToken(t *testing.T) {
	h := &Handler{settings: authSettings(), logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/zones", nil)
	req.Header.Set("Authorization", bearer(t, "other-key"))
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgTokenIsExpiredOrInvalid)
}

// ─────────────────────────────────────────────
// responseWriter
// ─────────────────────────────────────────────

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, _ = w.Write([]byte("hello"))
	_, _ = w.Write([]byte(" world"))
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 11, w.size)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	assert.Same(t, rec, w.Unwrap())
}

func TestResponseWriter_HijackUnsupported(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	_, _, err := w.Hijack()

	assert.Error(t, err)
	assert.Zero(t, w.status)
}

// ─────────────────────────────────────────────
// CheckHTTPMethod
// ─────────────────────────────────────────────

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/zones", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handle := CheckHTTPMethod(router)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{method: http.MethodGet, path: "/zones", want: http.StatusOK},
		{method: http.MethodPost, path: "/zones", want: http.StatusNotFound},
		{method: http.MethodGet, path: "/unknown", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handle(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
