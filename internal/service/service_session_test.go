// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-awl-bridge/internal/adapter"
	"github.com/MKhiriev/go-awl-bridge/internal/awl"
	"github.com/MKhiriev/go-awl-bridge/internal/config"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/internal/mock"
	"github.com/MKhiriev/go-awl-bridge/models"
)

const testWebsocketURL = "wss://awl.test/ws"

// sessionFixture wires a sessionService to a mocked portal and a dialer that
// hands out a fresh mocked connection on every call.
type sessionFixture struct {
	svc    *sessionService
	ctrl   *gomock.Controller
	portal *mock.MockSymphonyAdapter

	mu    sync.Mutex
	creds []config.Symphony
	dones []chan struct{}
	conns []*mock.MockAWLConnection
}

func newSessionFixture(t *testing.T, awlCfg config.AWL) *sessionFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &sessionFixture{
		ctrl:   ctrl,
		portal: mock.NewMockSymphonyAdapter(ctrl),
	}

	creds := config.Symphony{User: "user@example.com", Password: "secret", SessionTimeout: time.Hour}
	f.svc = NewSessionService(creds, awlCfg, logger.Nop()).(*sessionService)
	f.svc.backoff = func() retry.Backoff { return retry.NewConstant(time.Millisecond) }
	f.svc.reconnectDelay = time.Millisecond

	f.svc.newPortal = func(cfg config.Symphony) (adapter.SymphonyAdapter, error) {
		f.mu.Lock()
		f.creds = append(f.creds, cfg)
		f.mu.Unlock()
		return f.portal, nil
	}
	f.svc.dial = func(_ context.Context, uri string) (AWLConnection, error) {
		assert.Equal(t, testWebsocketURL, uri)
		return f.newConn(), nil
	}

	return f
}

func (f *sessionFixture) newConn() *mock.MockAWLConnection {
	done := make(chan struct{})
	conn := mock.NewMockAWLConnection(f.ctrl)
	conn.EXPECT().Login(gomock.Any(), "sid").Return(testLoginData(), nil).AnyTimes()
	conn.EXPECT().Done().Return(done).AnyTimes()
	conn.EXPECT().Err().Return(nil).AnyTimes()
	conn.EXPECT().Close().Return(nil).AnyTimes()
	conn.EXPECT().LoginData().Return(testLoginData(), true).AnyTimes()

	f.mu.Lock()
	f.dones = append(f.dones, done)
	f.conns = append(f.conns, conn)
	f.mu.Unlock()

	return conn
}

func (f *sessionFixture) dialCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.conns)
}

func (f *sessionFixture) expectPortalOK() {
	f.portal.EXPECT().Login(gomock.Any()).Return(nil).AnyTimes()
	f.portal.EXPECT().WebsocketURL(gomock.Any()).Return(testWebsocketURL, nil).AnyTimes()
	f.portal.EXPECT().SessionID().Return("sid").AnyTimes()
	f.portal.EXPECT().Logout(gomock.Any()).Return(nil).AnyTimes()
}

func testLoginData() models.LoginData {
	name := "Main Floor"
	return models.LoginData{
		Locations: []models.Location{{
			Description: "Home",
			Gateways: []models.Gateway{{
				GWID:            "001EC0000001",
				Description:     "Heat Pump",
				ThermostatNames: map[string]*string{"z1": &name},
			}},
		}},
		Raw: map[string]any{"locations": []any{}},
	}
}

// ── Start / Stop ──

func TestSessionService_Start_Success(t *testing.T) {
	f := newSessionFixture(t, config.AWL{})
	f.expectPortalOK()

	require.NoError(t, f.svc.Start(context.Background()))
	defer f.svc.Stop(context.Background())

	status := f.svc.Status()
	assert.Equal(t, models.SessionConnected, status.State)
	assert.False(t, status.ConnectedAt.IsZero())
	assert.Zero(t, status.Reconnects)
	assert.Empty(t, status.LastError)

	data, ok := f.svc.LoginData()
	require.True(t, ok)
	assert.Equal(t, []string{"001EC0000001"}, data.GatewayIDs())
}

func TestSessionService_Start_IsIdempotent(t *testing.T) {
	f := newSessionFixture(t, config.AWL{})
	f.expectPortalOK()

	require.NoError(t, f.svc.Start(context.Background()))
	require.NoError(t, f.svc.Start(context.Background()))
	defer f.svc.Stop(context.Background())

	assert.Equal(t, 1, f.dialCount())
}

func TestSessionService_Start_RetriesLoginFailure(t *testing.T) {
	f := newSessionFixture(t, config.AWL{LoginTimeout: time.Minute})

	gomock.InOrder(
		f.portal.EXPECT().Login(gomock.Any()).Return(adapter.ErrLoginFailed).Times(2),
		f.portal.EXPECT().Login(gomock.Any()).Return(nil),
	)
	f.portal.EXPECT().WebsocketURL(gomock.Any()).Return(testWebsocketURL, nil).AnyTimes()
	f.portal.EXPECT().SessionID().Return("sid").AnyTimes()
	f.portal.EXPECT().Logout(gomock.Any()).Return(nil).AnyTimes()

	require.NoError(t, f.svc.Start(context.Background()))
	defer f.svc.Stop(context.Background())

	assert.Equal(t, models.SessionConnected, f.svc.Status().State)
}

func TestSessionService_Start_GivesUpAfterLoginTimeout(t *testing.T) {
	f := newSessionFixture(t, config.AWL{LoginTimeout: 20 * time.Millisecond})
	f.portal.EXPECT().Login(gomock.Any()).Return(adapter.ErrLoginFailed).MinTimes(1)

	err := f.svc.Start(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrLoginFailed)

	status := f.svc.Status()
	assert.Equal(t, models.SessionDisconnected, status.State)
	assert.Contains(t, status.LastError, adapter.ErrLoginFailed.Error())
	assert.Zero(t, f.dialCount())
}

func TestSessionService_Start_GivesUpAfterConnectTimeout(t *testing.T) {
	f := newSessionFixture(t, config.AWL{ConnectTimeout: 20 * time.Millisecond})
	f.portal.EXPECT().Login(gomock.Any()).Return(nil).MinTimes(1)
	f.portal.EXPECT().WebsocketURL(gomock.Any()).Return("", adapter.ErrSymphonyUnavailable).MinTimes(1)
	// every failed attempt logs out again
	f.portal.EXPECT().Logout(gomock.Any()).Return(nil).MinTimes(1)

	err := f.svc.Start(context.Background())
	assert.ErrorIs(t, err, adapter.ErrSymphonyUnavailable)
}

func TestSessionService_Start_AWLLoginRejected(t *testing.T) {
	f := newSessionFixture(t, config.AWL{LoginTimeout: 20 * time.Millisecond})
	f.portal.EXPECT().Login(gomock.Any()).Return(nil).AnyTimes()
	f.portal.EXPECT().WebsocketURL(gomock.Any()).Return(testWebsocketURL, nil).AnyTimes()
	f.portal.EXPECT().SessionID().Return("sid").AnyTimes()
	f.portal.EXPECT().Logout(gomock.Any()).Return(nil).AnyTimes()

	rejected := &awl.TransactionError{TID: 1, Message: "invalid session"}
	f.svc.dial = func(context.Context, string) (AWLConnection, error) {
		conn := mock.NewMockAWLConnection(f.ctrl)
		conn.EXPECT().Login(gomock.Any(), "sid").Return(models.LoginData{}, fmt.Errorf("awl login: %w", rejected))
		conn.EXPECT().Close().Return(nil)
		return conn, nil
	}

	err := f.svc.Start(context.Background())

	var txErr *awl.TransactionError
	require.ErrorAs(t, err, &txErr)
	assert.Equal(t, "invalid session", txErr.Message)
}

func TestSessionService_Start_CancelledContext(t *testing.T) {
	f := newSessionFixture(t, config.AWL{})
	f.portal.EXPECT().Login(gomock.Any()).Return(adapter.ErrSymphonyUnavailable).AnyTimes()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := f.svc.Start(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSessionService_Stop_IgnoresLogoutError(t *testing.T) {
	f := newSessionFixture(t, config.AWL{})
	f.portal.EXPECT().Login(gomock.Any()).Return(nil)
	f.portal.EXPECT().WebsocketURL(gomock.Any()).Return(testWebsocketURL, nil)
	f.portal.EXPECT().SessionID().Return("sid")
	f.portal.EXPECT().Logout(gomock.Any()).Return(adapter.ErrLogoutFailed)

	require.NoError(t, f.svc.Start(context.Background()))
	require.NoError(t, f.svc.Stop(context.Background()))

	assert.Equal(t, models.SessionStopped, f.svc.Status().State)
	_, ok := f.svc.LoginData()
	assert.False(t, ok)
}

func TestSessionService_Stop_WithoutStart(t *testing.T) {
	f := newSessionFixture(t, config.AWL{})

	require.NoError(t, f.svc.Stop(context.Background()))
	assert.Equal(t, models.SessionStopped, f.svc.Status().State)
}

// ── supervisor ──

func TestSessionService_ReconnectsAfterDrop(t *testing.T) {
	f := newSessionFixture(t, config.AWL{})
	f.expectPortalOK()

	require.NoError(t, f.svc.Start(context.Background()))
	defer f.svc.Stop(context.Background())

	f.mu.Lock()
	close(f.dones[0])
	f.mu.Unlock()

	assert.Eventually(t, func() bool {
		status := f.svc.Status()
		return f.dialCount() == 2 && status.State == models.SessionConnected && status.Reconnects == 1
	}, 2*time.Second, 5*time.Millisecond)
}

func TestSessionService_RenewsSession(t *testing.T) {
	f := newSessionFixture(t, config.AWL{})
	f.expectPortalOK()
	f.svc.creds.SessionTimeout = 20 * time.Millisecond

	require.NoError(t, f.svc.Start(context.Background()))
	defer f.svc.Stop(context.Background())

	assert.Eventually(t, func() bool {
		return f.dialCount() >= 2
	}, 2*time.Second, 5*time.Millisecond)
}

func TestSessionService_Reconnect_BeforeStart(t *testing.T) {
	f := newSessionFixture(t, config.AWL{})

	err := f.svc.Reconnect(context.Background(), config.Symphony{User: "new"})
	assert.ErrorIs(t, err, ErrSessionNotStarted)
}

func TestSessionService_Reconnect_UsesNewCredentials(t *testing.T) {
	f := newSessionFixture(t, config.AWL{})
	f.expectPortalOK()

	require.NoError(t, f.svc.Start(context.Background()))
	defer f.svc.Stop(context.Background())

	require.NoError(t, f.svc.Reconnect(context.Background(), config.Symphony{User: "new@example.com", Password: "pw"}))

	assert.Eventually(t, func() bool {
		f.mu.Lock()
		defer f.mu.Unlock()
		return len(f.creds) == 2 && f.creds[1].User == "new@example.com" && len(f.conns) == 2
	}, 2*time.Second, 5*time.Millisecond)
}

func TestSessionService_Reconnect_LogsOutOldSession(t *testing.T) {
	f := newSessionFixture(t, config.AWL{})
	f.portal.EXPECT().Login(gomock.Any()).Return(nil).AnyTimes()
	f.portal.EXPECT().WebsocketURL(gomock.Any()).Return(testWebsocketURL, nil).AnyTimes()
	f.portal.EXPECT().SessionID().Return("sid").AnyTimes()

	var logouts atomic.Int32
	f.portal.EXPECT().Logout(gomock.Any()).DoAndReturn(func(context.Context) error {
		logouts.Add(1)
		return nil
	}).AnyTimes()

	require.NoError(t, f.svc.Start(context.Background()))
	defer f.svc.Stop(context.Background())

	require.NoError(t, f.svc.Reconnect(context.Background(), config.Symphony{User: "new@example.com", Password: "pw"}))

	require.Eventually(t, func() bool {
		return f.dialCount() == 2 && f.svc.Status().State == models.SessionConnected
	}, 2*time.Second, 5*time.Millisecond)

	assert.Equal(t, int32(1), logouts.Load())

	f.mu.Lock()
	defer f.mu.Unlock()
	require.Len(t, f.creds, 2)
	assert.Equal(t, "user@example.com", f.creds[0].User)
	assert.Equal(t, "new@example.com", f.creds[1].User)
}

// ── Read ──

func TestSessionService_Read(t *testing.T) {
	tests := []struct {
		name       string
		apiTimeout time.Duration
		setup      func(conn *mock.MockAWLConnection)
		noConn     bool
		want       models.Reading
		wantErr    error
	}{
		{
			name: "success",
			setup: func(conn *mock.MockAWLConnection) {
				conn.EXPECT().Read(gomock.Any(), "gw").Return(models.Reading{"TStatRoomTemp": 71.0}, nil)
			},
			want: models.Reading{"TStatRoomTemp": 71.0},
		},
		{
			name:    "not connected",
			noConn:  true,
			wantErr: ErrNotConnected,
		},
		{
			name:       "not connected after retries",
			apiTimeout: 30 * time.Millisecond,
			noConn:     true,
			wantErr:    ErrNotConnected,
		},
		{
			name:       "timeout is retried",
			apiTimeout: 2 * time.Second,
			setup: func(conn *mock.MockAWLConnection) {
				gomock.InOrder(
					conn.EXPECT().Read(gomock.Any(), "gw").Return(nil, awl.ErrTransactionTimeout),
					conn.EXPECT().Read(gomock.Any(), "gw").Return(models.Reading{"ok": true}, nil),
				)
			},
			want: models.Reading{"ok": true},
		},
		{
			name: "timeout without api timeout",
			setup: func(conn *mock.MockAWLConnection) {
				conn.EXPECT().Read(gomock.Any(), "gw").Return(nil, awl.ErrTransactionTimeout)
			},
			wantErr: awl.ErrTransactionTimeout,
		},
		{
			name:       "transaction error is not retried",
			apiTimeout: 2 * time.Second,
			setup: func(conn *mock.MockAWLConnection) {
				conn.EXPECT().Read(gomock.Any(), "gw").Return(nil, &awl.TransactionError{TID: 3, Message: "bad awlid"}).Times(1)
			},
			wantErr: &awl.TransactionError{},
		},
		{
			name: "closed connection is reported as not connected",
			setup: func(conn *mock.MockAWLConnection) {
				conn.EXPECT().Read(gomock.Any(), "gw").Return(nil, awl.ErrConnectionClosed)
			},
			wantErr: ErrNotConnected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture(t, config.AWL{APITimeout: tt.apiTimeout})

			if !tt.noConn {
				conn := mock.NewMockAWLConnection(f.ctrl)
				tt.setup(conn)
				f.svc.conn = conn
			}

			got, err := f.svc.Read(context.Background(), "gw")

			if tt.wantErr != nil {
				require.Error(t, err)
				var txErr *awl.TransactionError
				if errors.As(tt.wantErr, &txErr) {
					assert.ErrorAs(t, err, &txErr)
				} else {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSessionService_LoginData_NotConnected(t *testing.T) {
	f := newSessionFixture(t, config.AWL{})

	_, ok := f.svc.LoginData()
	assert.False(t, ok)
	assert.Equal(t, models.SessionDisconnected, f.svc.Status().State)
}

func TestIsLoginError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{err: adapter.ErrLoginFailed, want: true},
		{err: adapter.ErrNoSession, want: true},
		{err: fmt.Errorf("wrap: %w", adapter.ErrWebsocketURINotFound), want: true},
		{err: fmt.Errorf("awl login: %w", &awl.TransactionError{TID: 1, Message: "x"}), want: true},
		{err: adapter.ErrSymphonyUnavailable, want: false},
		{err: awl.ErrHandshake, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, isLoginError(tt.err))
		})
	}
}
