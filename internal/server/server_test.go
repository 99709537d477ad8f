package server

import (
	"context"
	"errors"
	"net"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-awl-bridge/internal/config"
	"github.com/MKhiriev/go-awl-bridge/internal/handler"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/internal/mock"
	"github.com/MKhiriev/go-awl-bridge/internal/service"
	"github.com/MKhiriev/go-awl-bridge/internal/workers"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func newTestServer(t *testing.T, address string, reload ReloadFunc) (*server, *mock.MockSessionService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	session := mock.NewMockSessionService(ctrl)
	recorder := mock.NewMockRecorderService(ctrl)
	recorder.EXPECT().Enabled().Return(false).AnyTimes()

	services := &service.Services{SessionService: session, RecorderService: recorder}
	cfg := &config.StructuredConfig{Server: config.Server{HTTPAddress: address}}

	handlers, err := handler.NewHandlers(services, cfg, nil, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, services, workers.NewWorkers(services, cfg.Workers, logger.Nop()), cfg.Server, reload, logger.Nop())
	require.NoError(t, err)

	return srv.(*server), session
}

// ── NewServer ──

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, &service.Services{}, nil, config.Server{HTTPAddress: ":8000"}, nil, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

// ── RunServer ──

func TestRunServer_ServesUntilCancelled(t *testing.T) {
	addr := freeAddress(t)
	srv, session := newTestServer(t, addr, nil)

	gomock.InOrder(
		session.EXPECT().Start(gomock.Any()).Return(nil),
		session.EXPECT().Stop(gomock.Any()).Return(nil),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServer_SessionStartFails(t *testing.T) {
	srv, session := newTestServer(t, freeAddress(t), nil)
	failure := errors.New("login failed")
	session.EXPECT().Start(gomock.Any()).Return(failure)

	err := srv.RunServer(context.Background())

	assert.ErrorIs(t, err, failure)
}

func TestRunServer_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv, session := newTestServer(t, ln.Addr().String(), nil)
	session.EXPECT().Start(gomock.Any()).Return(nil)
	session.EXPECT().Stop(gomock.Any()).Return(nil)

	err = srv.RunServer(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}

// ── Shutdown ──

func TestShutdown_Once(t *testing.T) {
	srv, session := newTestServer(t, freeAddress(t), nil)
	session.EXPECT().Stop(gomock.Any()).Return(nil).Times(1)

	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, srv.Shutdown(context.Background()))
}

// ── reload ──

func TestWatchReload(t *testing.T) {
	creds := config.Symphony{User: "new@example.com", Password: "secret"}
	srv, session := newTestServer(t, freeAddress(t), func() (config.Symphony, error) {
		return creds, nil
	})

	reconnected := make(chan config.Symphony, 1)
	session.EXPECT().Reconnect(gomock.Any(), creds).DoAndReturn(func(_ context.Context, c config.Symphony) error {
		reconnected <- c
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hup := make(chan os.Signal, 1)
	go srv.watchReload(ctx, hup)
	hup <- syscall.SIGHUP

	select {
	case got := <-reconnected:
		assert.Equal(t, creds, got)
	case <-time.After(time.Second):
		t.Fatal("session was not reconnected")
	}
}

func TestReloadCredentials_Errors(t *testing.T) {
	t.Run("no reload func", func(t *testing.T) {
		srv, _ := newTestServer(t, freeAddress(t), nil)
		assert.ErrorIs(t, srv.reloadCredentials(context.Background()), errNoReloadFunc)
	})

	t.Run("config error keeps session", func(t *testing.T) {
		failure := errors.New("missing password")
		srv, _ := newTestServer(t, freeAddress(t), func() (config.Symphony, error) {
			return config.Symphony{}, failure
		})
		assert.ErrorIs(t, srv.reloadCredentials(context.Background()), failure)
	})
}
