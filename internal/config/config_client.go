// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds network settings used by the monitor transport layer.
type ClientAdapter struct {
	// HTTPAddress is the bridge address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// Token is the optional bearer token.
	Token string
	// RefreshInterval defines how often the monitor refreshes.
	RefreshInterval time.Duration
}

// ClientConfig is the terminal monitor configuration.
type ClientConfig struct {
	Adapter ClientAdapter
	Log     Log
}

// GetClientConfig builds and validates the monitor configuration.
//
// The monitor does not talk to Symphony, so the server-side validation of
// [StructuredConfig] is skipped: only environment, flags, file and defaults
// are merged and the adapter fields are checked.
func GetClientConfig() (*ClientConfig, error) {
	return LoadClientConfig(os.Args[1:])
}

// LoadClientConfig is GetClientConfig with explicit command-line arguments.
func LoadClientConfig(args []string) (*ClientConfig, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile()

	cfg, err := b.build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	defaults := defaultsFor(cfg.App.Env)
	adapter := cfg.Adapter
	if adapter.HTTPAddress == "" {
		adapter.HTTPAddress = defaults.Adapter.HTTPAddress
	}
	if adapter.RequestTimeout == 0 {
		adapter.RequestTimeout = defaults.Adapter.RequestTimeout
	}
	if adapter.RefreshInterval == 0 {
		adapter.RefreshInterval = defaults.Adapter.RefreshInterval
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:     adapter.HTTPAddress,
			RequestTimeout:  adapter.RequestTimeout,
			Token:           adapter.Token,
			RefreshInterval: adapter.RefreshInterval,
		},
		Log: cfg.Log,
	}

	return clientCfg, clientCfg.validate()
}
