package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-awl-bridge/internal/config"
	"github.com/MKhiriev/go-awl-bridge/internal/handler"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/internal/service"
	"github.com/MKhiriev/go-awl-bridge/internal/workers"
)

const shutdownTimeout = 15 * time.Second

// ReloadFunc loads the current Symphony credentials from the configuration
// sources. It is called on SIGHUP.
type ReloadFunc func() (config.Symphony, error)

type server struct {
	httpServer *httpServer
	session    service.SessionService
	workers    *workers.Workers
	reload     ReloadFunc

	shutdownOnce sync.Once
	shutdownErr  error

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, services *service.Services, workers *workers.Workers, cfg config.Server, reload ReloadFunc, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		session:    services.SessionService,
		workers:    workers,
		reload:     reload,
		logger:     logger,
	}, nil
}

// RunServer establishes the AWL session first, so that the HTTP API starts
// with login data available, then serves until SIGINT, SIGTERM, SIGQUIT or
// cancellation of ctx.
func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	s.logger.Info().Msg("starting awl session")
	if err := s.session.Start(ctx); err != nil {
		return fmt.Errorf("error starting awl session: %w", err)
	}

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Msg("Launching HTTP server")
		return s.httpServer.RunServer()
	})
	g.Go(func() error {
		return s.workers.Run(gctx)
	})
	g.Go(func() error {
		s.watchReload(gctx, hup)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

// Shutdown stops the HTTP server, then the AWL session. It is safe to call
// more than once.
func (s *server) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		s.logger.Info().Msg("shutting down")

		s.shutdownErr = errors.Join(
			s.httpServer.Shutdown(ctx),
			s.session.Stop(ctx),
		)
	})
	return s.shutdownErr
}

// watchReload reloads the Symphony credentials on every signal from hup and
// hands them to the session. A failed reload keeps the current session.
func (s *server) watchReload(ctx context.Context, hup <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			if err := s.reloadCredentials(ctx); err != nil {
				s.logger.Err(err).Str("func", "*server.watchReload").Msg("error reloading configuration, keeping current session")
			}
		}
	}
}

func (s *server) reloadCredentials(ctx context.Context) error {
	if s.reload == nil {
		return errNoReloadFunc
	}

	creds, err := s.reload()
	if err != nil {
		return err
	}

	s.logger.Info().Str("func", "*server.reloadCredentials").Str("user", creds.User).Msg("configuration reloaded")
	return s.session.Reconnect(ctx, creds)
}
