// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"regexp"
	"sync"
	"time"

	"github.com/MKhiriev/go-awl-bridge/internal/config"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/internal/utils"
)

const (
	sessionCookie          = "sessionid"
	legalAcknowledgeCookie = "legal-acknowledge"

	logoutTimeout = 2 * time.Second
)

var websocketURIRegexp = regexp.MustCompile(`wss?://[^"']+`)

type symphonyAdapter struct {
	cfg      config.Symphony
	loginURL *url.URL

	mu      sync.RWMutex
	client  *utils.HTTPClient
	jar     http.CookieJar
	session string

	logger *logger.Logger
}

// NewSymphonyAdapter constructs a [SymphonyAdapter] for the account in cfg.
// Returns an error if cfg.LoginURL or cfg.ConfigURL is not an absolute URL.
func NewSymphonyAdapter(cfg config.Symphony, log *logger.Logger) (SymphonyAdapter, error) {
	loginURL, err := url.Parse(cfg.LoginURL)
	if err != nil || loginURL.Scheme == "" || loginURL.Host == "" {
		return nil, fmt.Errorf("invalid symphony login url %q", cfg.LoginURL)
	}
	if u, err := url.Parse(cfg.ConfigURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid symphony config url %q", cfg.ConfigURL)
	}

	return &symphonyAdapter{cfg: cfg, loginURL: loginURL, logger: log}, nil
}

// Login implements [SymphonyAdapter].
func (s *symphonyAdapter) Login(ctx context.Context) error {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return fmt.Errorf("create cookie jar: %w", err)
	}
	jar.SetCookies(s.loginURL, []*http.Cookie{{
		Name:  legalAcknowledgeCookie,
		Value: "yes",
		Path:  "/",
	}})

	client := s.newClient(jar)

	resp, err := client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"op":           "login",
			"redirect":     "/",
			"emailaddress": s.cfg.User,
			"password":     s.cfg.Password,
		}).
		Post(s.cfg.LoginURL)
	if err != nil {
		return fmt.Errorf("%w: could not connect to %s: %w", ErrSymphonyUnavailable, s.cfg.LoginURL, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("%w: %s", ErrLoginFailed, resp.Status())
	}

	session := cookieValue(jar, s.loginURL, sessionCookie)
	if session == "" {
		return ErrNoSession
	}

	s.mu.Lock()
	s.client, s.jar, s.session = client, jar, session
	s.mu.Unlock()

	s.logger.Debug().Str("user", s.cfg.User).Msg("logged in to symphony")
	return nil
}

// Logout implements [SymphonyAdapter].
func (s *symphonyAdapter) Logout(ctx context.Context) error {
	s.mu.Lock()
	client := s.client
	s.client, s.jar, s.session = nil, nil, ""
	s.mu.Unlock()

	if client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, logoutTimeout)
	defer cancel()

	resp, err := client.R().
		SetContext(ctx).
		SetQueryParam("op", "logout").
		Get(s.cfg.LoginURL)
	if err != nil {
		return fmt.Errorf("%w: could not connect to %s: %w", ErrSymphonyUnavailable, s.cfg.LoginURL, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("%w: %s", ErrLogoutFailed, resp.Status())
	}

	return nil
}

// SessionID implements [SymphonyAdapter].
func (s *symphonyAdapter) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// WebsocketURL implements [SymphonyAdapter].
func (s *symphonyAdapter) WebsocketURL(ctx context.Context) (string, error) {
	s.mu.RLock()
	client := s.client
	s.mu.RUnlock()

	if client == nil {
		return "", ErrNoSession
	}

	resp, err := client.R().
		SetContext(ctx).
		Get(s.cfg.ConfigURL)
	if err != nil {
		return "", fmt.Errorf("%w: could not connect to %s: %w", ErrSymphonyUnavailable, s.cfg.ConfigURL, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return "", fmt.Errorf("%w: unable to fetch %s: %s", ErrWebsocketURINotFound, s.cfg.ConfigURL, resp.Status())
	}

	uri := websocketURIRegexp.Find(resp.Body())
	if uri == nil {
		return "", fmt.Errorf("%w in %s", ErrWebsocketURINotFound, s.cfg.ConfigURL)
	}

	return string(uri), nil
}

func (s *symphonyAdapter) newClient(jar http.CookieJar) *utils.HTTPClient {
	opts := []utils.HTTPClientOption{
		utils.WithCookieJar(jar),
		utils.WithoutRedirects(),
	}
	if s.cfg.RequestTimeout > 0 {
		opts = append(opts, utils.WithTimeout(s.cfg.RequestTimeout))
	}

	return utils.NewHTTPClient(opts...)
}

func cookieValue(jar http.CookieJar, u *url.URL, name string) string {
	for _, c := range jar.Cookies(u) {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// IsLoginError reports whether err was caused by the portal rejecting or
// failing the login, as opposed to the portal being unreachable.
func IsLoginError(err error) bool {
	return errors.Is(err, ErrLoginFailed) ||
		errors.Is(err, ErrNoSession) ||
		errors.Is(err, ErrWebsocketURINotFound)
}
