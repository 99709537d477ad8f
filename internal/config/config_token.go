// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"dario.cat/mergo"
)

// LoadTokenConfig returns the token settings the bridge would run with,
// read from the environment and the optional configuration file. Symphony
// settings are not required.
func LoadTokenConfig() (App, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFile().
		build()
	if err != nil {
		return App{}, fmt.Errorf("error get structured config: %w", err)
	}

	app := cfg.App
	if err = mergo.Merge(&app, defaultsFor(app.Env).App); err != nil {
		return App{}, fmt.Errorf("error merging default configs: %w", err)
	}

	if app.TokenSignKey == "" || app.TokenIssuer == "" || app.TokenDuration <= 0 {
		return App{}, fmt.Errorf("%w: APP_TOKEN_SIGN_KEY is required", ErrInvalidTokenConfigs)
	}

	return app, nil
}
