// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-awl-bridge/internal/adapter"
	"github.com/MKhiriev/go-awl-bridge/internal/awl"
	"github.com/MKhiriev/go-awl-bridge/internal/config"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/models"
)

const (
	reconnectDelay    = time.Second
	readRetryInterval = 250 * time.Millisecond
	stopLogoutTimeout = 5 * time.Second

	backoffBase = 500 * time.Millisecond
	backoffCap  = time.Minute
)

// SymphonyFactory builds a portal adapter for one set of credentials.
type SymphonyFactory func(cfg config.Symphony) (adapter.SymphonyAdapter, error)

// AWLDialer opens an AWL WebSocket connection to uri.
type AWLDialer func(ctx context.Context, uri string) (AWLConnection, error)

type sessionService struct {
	awlCfg config.AWL

	newPortal      SymphonyFactory
	dial           AWLDialer
	backoff        func() retry.Backoff
	reconnectDelay time.Duration

	// connectMu serialises session establishment between Start, the
	// supervisor and Stop.
	connectMu sync.Mutex

	mu     sync.RWMutex
	creds  config.Symphony
	portal adapter.SymphonyAdapter
	conn   AWLConnection
	status models.SessionStatus
	// credsChanged makes the next connect build a portal for creds. The
	// current portal stays until its session has been logged out.
	credsChanged bool
	started      bool

	reconnect chan struct{}
	cancel    context.CancelFunc
	wg        sync.WaitGroup

	logger *logger.Logger
}

// NewSessionService constructs a [SessionService] for the account in creds.
// Nothing is contacted until Start.
func NewSessionService(creds config.Symphony, awlCfg config.AWL, log *logger.Logger) SessionService {
	s := &sessionService{
		awlCfg:         awlCfg,
		creds:          creds,
		reconnectDelay: reconnectDelay,
		reconnect:      make(chan struct{}, 1),
		status:         models.SessionStatus{State: models.SessionDisconnected},
		logger:         log,
	}

	s.newPortal = func(cfg config.Symphony) (adapter.SymphonyAdapter, error) {
		return adapter.NewSymphonyAdapter(cfg, log)
	}
	s.dial = func(ctx context.Context, uri string) (AWLConnection, error) {
		return awl.Dial(ctx, uri, awl.Options{
			TransactionTimeout: awlCfg.TransactionTimeout,
			Logger:             log,
		})
	}
	s.backoff = func() retry.Backoff {
		return retry.WithCappedDuration(backoffCap, retry.WithJitterPercent(10, retry.NewExponential(backoffBase)))
	}

	return s
}

// Start implements [SessionService].
func (s *sessionService) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	if err := s.establish(ctx); err != nil {
		return err
	}

	// the supervisor outlives the start-up context
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	s.mu.Lock()
	s.started = true
	s.cancel = cancel
	s.mu.Unlock()

	s.wg.Add(1)
	go s.supervise(runCtx)

	return nil
}

// Stop implements [SessionService]. Logout failures are logged and ignored.
func (s *sessionService) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.started = false
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.connectMu.Lock()
	defer s.connectMu.Unlock()

	s.closeSession(ctx)
	s.setState(models.SessionStopped, nil)
	s.logger.Info().Str("func", "*sessionService.Stop").Msg("awl session stopped")

	return nil
}

// Reconnect implements [SessionService]. The supervisor tears the current
// session down and establishes a new one with creds.
func (s *sessionService) Reconnect(ctx context.Context, creds config.Symphony) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return ErrSessionNotStarted
	}
	s.creds = creds
	s.credsChanged = true
	s.mu.Unlock()

	s.logger.Info().Str("func", "*sessionService.Reconnect").Str("user", creds.User).Msg("credentials changed, reconnecting")

	select {
	case s.reconnect <- struct{}{}:
	default:
		// a reconnect is already queued
	}
	return nil
}

// Read implements [SessionService]. Connection drops and transaction
// timeouts are retried at a constant interval for up to AWL.APITimeout.
func (s *sessionService) Read(ctx context.Context, gwid string) (models.Reading, error) {
	var backoff retry.Backoff = retry.NewConstant(readRetryInterval)
	if s.awlCfg.APITimeout > 0 {
		backoff = retry.WithMaxDuration(s.awlCfg.APITimeout, backoff)
	} else {
		backoff = retry.WithMaxRetries(0, backoff)
	}

	var reading models.Reading
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		conn := s.currentConn()
		if conn == nil {
			return retry.RetryableError(ErrNotConnected)
		}

		r, err := conn.Read(ctx, gwid)
		switch {
		case err == nil:
			reading = r
			return nil
		case errors.Is(err, awl.ErrConnectionClosed), errors.Is(err, awl.ErrNotLoggedIn):
			return retry.RetryableError(fmt.Errorf("%w: %w", ErrNotConnected, err))
		case errors.Is(err, awl.ErrTransactionTimeout):
			return retry.RetryableError(err)
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}

	return reading, nil
}

// LoginData implements [SessionService].
func (s *sessionService) LoginData() (models.LoginData, bool) {
	conn := s.currentConn()
	if conn == nil {
		return models.LoginData{}, false
	}
	return conn.LoginData()
}

// Status implements [SessionService].
func (s *sessionService) Status() models.SessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// supervise re-establishes the session whenever the socket closes, the
// renewal timer fires or the credentials change.
func (s *sessionService) supervise(ctx context.Context) {
	defer s.wg.Done()

	for {
		if conn := s.currentConn(); conn != nil {
			if !s.waitSessionEnd(ctx, conn) {
				return
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.reconnectDelay):
		}

		// credentials swapped while disconnected are picked up right here
		select {
		case <-s.reconnect:
		default:
		}

		s.logger.Info().Str("func", "*sessionService.supervise").Msg("reconnecting to awl")
		if err := s.establish(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			s.logger.Error().Err(err).Str("func", "*sessionService.supervise").Msg("giving up reconnect round, starting over")
		}
	}
}

// waitSessionEnd blocks until conn has to be replaced and tears the session
// down. It returns false when ctx ended first.
func (s *sessionService) waitSessionEnd(ctx context.Context, conn AWLConnection) bool {
	renew := time.NewTimer(s.sessionTimeout())
	defer renew.Stop()

	select {
	case <-ctx.Done():
		return false

	case <-conn.Done():
		if err := conn.Err(); err != nil {
			s.logger.Info().Err(err).Str("func", "*sessionService.supervise").Msg("awl connection closed unexpectedly")
		} else {
			s.logger.Debug().Str("func", "*sessionService.supervise").Msg("awl connection closed")
		}

	case <-renew.C:
		s.logger.Info().Str("func", "*sessionService.supervise").Msg("reconnecting due to session timeout")

	case <-s.reconnect:
		s.logger.Info().Str("func", "*sessionService.supervise").Msg("reconnecting with new credentials")
	}

	s.connectMu.Lock()
	s.closeSession(ctx)
	s.setState(models.SessionDisconnected, conn.Err())
	s.connectMu.Unlock()

	return true
}

// establish connects with exponential backoff. Login failures give up after
// AWL.LoginTimeout, connection failures after AWL.ConnectTimeout; zero
// retries until ctx ends.
func (s *sessionService) establish(ctx context.Context) error {
	s.connectMu.Lock()
	defer s.connectMu.Unlock()

	s.setState(models.SessionConnecting, nil)

	start := time.Now()
	tries := 0

	err := retry.Do(ctx, s.backoff(), func(ctx context.Context) error {
		tries++

		err := s.connect(ctx)
		if err == nil {
			return nil
		}
		s.setState(models.SessionConnecting, err)

		limit := s.awlCfg.ConnectTimeout
		if isLoginError(err) {
			limit = s.awlCfg.LoginTimeout
		}

		elapsed := time.Since(start)
		if limit > 0 && elapsed >= limit {
			return err
		}

		if elapsed > s.awlCfg.WarnAfterDisconnected {
			s.logger.Error().Err(err).
				Str("func", "*sessionService.establish").
				Int("tries", tries).
				Dur("elapsed", elapsed).
				Msg("cannot reconnect to awl")
		}
		return retry.RetryableError(err)
	})
	if err != nil {
		s.setState(models.SessionDisconnected, err)
		return err
	}

	if tries > 1 {
		s.logger.Warn().
			Str("func", "*sessionService.establish").
			Int("tries", tries).
			Dur("elapsed", time.Since(start)).
			Msg("reconnected to awl")
	}

	return nil
}

// connect runs one portal login, websocket dial and AWL login.
func (s *sessionService) connect(ctx context.Context) error {
	portal, err := s.currentPortal()
	if err != nil {
		return err
	}

	if err = portal.Login(ctx); err != nil {
		return err
	}

	uri, err := portal.WebsocketURL(ctx)
	if err != nil {
		s.logout(ctx, portal)
		return err
	}

	conn, err := s.dial(ctx, uri)
	if err != nil {
		s.logout(ctx, portal)
		return err
	}

	if _, err = conn.Login(ctx, portal.SessionID()); err != nil {
		conn.Close()
		s.logout(ctx, portal)
		return err
	}

	s.mu.Lock()
	if !s.status.ConnectedAt.IsZero() {
		s.status.Reconnects++
	}
	s.conn = conn
	s.status.State = models.SessionConnected
	s.status.ConnectedAt = time.Now().UTC()
	s.status.LastError = ""
	s.mu.Unlock()

	s.logger.Info().Str("func", "*sessionService.connect").Msg("awl session established")
	return nil
}

// closeSession closes the socket and logs out. The caller holds connectMu.
func (s *sessionService) closeSession(ctx context.Context) {
	s.mu.Lock()
	conn := s.conn
	portal := s.portal
	s.conn = nil
	s.mu.Unlock()

	if conn != nil {
		if err := conn.Close(); err != nil {
			s.logger.Debug().Err(err).Str("func", "*sessionService.closeSession").Msg("error closing awl connection")
		}
	}
	if portal != nil {
		s.logout(ctx, portal)
	}
}

func (s *sessionService) logout(ctx context.Context, portal adapter.SymphonyAdapter) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), stopLogoutTimeout)
	defer cancel()

	if err := portal.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "*sessionService.logout").Msg("awl logout failed; ignoring")
	}
}

func (s *sessionService) currentConn() AWLConnection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conn
}

func (s *sessionService) currentPortal() (adapter.SymphonyAdapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.portal != nil && !s.credsChanged {
		return s.portal, nil
	}

	portal, err := s.newPortal(s.creds)
	if err != nil {
		return nil, err
	}
	s.portal = portal
	s.credsChanged = false
	return portal, nil
}

func (s *sessionService) setState(state models.SessionState, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status.State = state
	if err != nil {
		s.status.LastError = err.Error()
	}
}

func (s *sessionService) sessionTimeout() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.creds.SessionTimeout <= 0 {
		return config.DefaultSessionTimeout
	}
	return s.creds.SessionTimeout
}

// isLoginError reports whether err came from the portal login or the AWL
// login command, as opposed to a transport failure.
func isLoginError(err error) bool {
	var txErr *awl.TransactionError
	return adapter.IsLoginError(err) || errors.As(err, &txErr)
}
