// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DefaultLoginURL  = "https://symphony.mywaterfurnace.com/account/login"
	DefaultConfigURL = "https://symphony.mywaterfurnace.com/assets/js/awlconfig.js.php"

	// DefaultSessionTimeout matches the portal's own 1500 s client-side
	// session refresh.
	DefaultSessionTimeout     = 1500 * time.Second
	DefaultTransactionTimeout = time.Hour
	DefaultCacheTTL           = 10 * time.Second

	// Disabled sets an AWL duration that has a non-zero default to zero.
	// mergo treats an explicit zero as unset, so any negative value is
	// accepted and resolved to zero after the defaults are applied.
	Disabled time.Duration = -1
)

// defaultsFor returns the configuration defaults of the given environment
// profile. Unknown or empty profiles get the production defaults.
func defaultsFor(profile string) *StructuredConfig {
	cfg := &StructuredConfig{
		App: App{
			Env:           EnvProduction,
			Version:       "dev",
			TokenIssuer:   "go-awl-bridge",
			TokenDuration: 30 * 24 * time.Hour,
		},
		Symphony: Symphony{
			LoginURL:       DefaultLoginURL,
			ConfigURL:      DefaultConfigURL,
			SessionTimeout: DefaultSessionTimeout,
			RequestTimeout: 15 * time.Second,
		},
		AWL: AWL{
			TransactionTimeout:    DefaultTransactionTimeout,
			APITimeout:            10 * time.Second,
			WarnAfterDisconnected: 10 * time.Second,
			CacheTTL:              DefaultCacheTTL,
		},
		Server: Server{
			HTTPAddress:    "localhost:8000",
			RequestTimeout: 30 * time.Second,
		},
		Log: Log{
			Level:      "info",
			Directory:  defaultLogDirectory(),
			AccessLog:  "access.log",
			MaxSizeMB:  50,
			MaxBackups: 7,
		},
		Adapter: Adapter{
			HTTPAddress:     "localhost:8000",
			RequestTimeout:  10 * time.Second,
			RefreshInterval: 10 * time.Second,
		},
	}

	if strings.EqualFold(profile, EnvDevelopment) || strings.EqualFold(profile, "testing") {
		cfg.App.Env = EnvDevelopment
		cfg.AWL.APITimeout = 2 * time.Second
		cfg.AWL.WarnAfterDisconnected = Disabled
		cfg.Server.HTTPAddress = "localhost:5000"
		cfg.Adapter.HTTPAddress = "localhost:5000"
		cfg.Log.Level = "debug"
	}

	return cfg
}

func defaultLogDirectory() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "go-awl-bridge")
	}
	return "."
}

// resolveDisabled turns the negative durations that mean [Disabled] into
// zero.
func (a *AWL) resolveDisabled() {
	for _, d := range []*time.Duration{
		&a.APITimeout,
		&a.ConnectTimeout,
		&a.LoginTimeout,
		&a.WarnAfterDisconnected,
		&a.CacheTTL,
	} {
		if *d < 0 {
			*d = 0
		}
	}
}
