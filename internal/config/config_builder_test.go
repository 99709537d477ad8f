// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── build ──

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Symphony: Symphony{User: "env@example.com", Password: "env"}},
		&StructuredConfig{Symphony: Symphony{User: "flag@example.com"}},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "flag@example.com", cfg.Symphony.User)
	assert.Equal(t, "env", cfg.Symphony.Password, "zero fields must not override")
}

func TestBuild_DefaultsFillOnlyEmptyFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Symphony: Symphony{User: "me@example.com", Password: "secret"},
		AWL:      AWL{CacheTTL: time.Minute},
	})
	b.withDefaults()

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.AWL.CacheTTL)
	assert.Equal(t, DefaultTransactionTimeout, cfg.AWL.TransactionTimeout)
	assert.Equal(t, DefaultSessionTimeout, cfg.Symphony.SessionTimeout)
	assert.Equal(t, DefaultLoginURL, cfg.Symphony.LoginURL)
	assert.Equal(t, EnvProduction, cfg.App.Env)
	assert.Equal(t, "localhost:8000", cfg.Server.HTTPAddress)
}

func TestBuild_DevelopmentProfile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:      App{Env: "development"},
		Symphony: Symphony{User: "me@example.com", Password: "secret"},
	})
	b.withDefaults()

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.App.Env)
	assert.Equal(t, 2*time.Second, cfg.AWL.APITimeout)
	assert.Equal(t, time.Duration(0), cfg.AWL.WarnAfterDisconnected)
	assert.Equal(t, "localhost:5000", cfg.Server.HTTPAddress)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestBuild_NegativeDurationDisables(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Symphony: Symphony{User: "me@example.com", Password: "secret"},
		AWL:      AWL{CacheTTL: Disabled, APITimeout: -time.Second, WarnAfterDisconnected: Disabled},
	})
	b.withDefaults()

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.AWL.CacheTTL)
	assert.Equal(t, time.Duration(0), cfg.AWL.APITimeout)
	assert.Equal(t, time.Duration(0), cfg.AWL.WarnAfterDisconnected)
	assert.Equal(t, DefaultTransactionTimeout, cfg.AWL.TransactionTimeout)
}

func TestBuild_NegativeTransactionTimeout(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Symphony: Symphony{User: "me@example.com", Password: "secret"},
		AWL:      AWL{TransactionTimeout: -time.Second},
	})
	b.withDefaults()

	_, err := b.build()

	assert.ErrorIs(t, err, ErrInvalidAWLConfigs)
}

func TestBuild_ValidationFails(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withDefaults()

	_, err := b.build()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSymphonyConfigs)
}

func TestBuild_SourceErrorIsWrapped(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "bad"})

	_, err := b.build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occured during building config")
}

// ── withFile ──

func TestWithFile_UsesLastFilePath(t *testing.T) {
	first := writeTempConfig(t, "first.json", `{"waterfurnace": {"user": "first@example.com"}}`)
	second := writeTempConfig(t, "second.json", `{"waterfurnace": {"user": "second@example.com"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{FilePath: first},
		&StructuredConfig{FilePath: second},
	)
	b.withFile()

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "second@example.com", cfg.Symphony.User)
}

func TestWithFile_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithFile_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: filepath.Join(t.TempDir(), "nope.toml")})
	b.withFile()

	_, err := b.build()
	assert.Error(t, err)
}

// ── LoadStructuredConfig ──

func TestLoadStructuredConfig_FileOverridesEnv(t *testing.T) {
	path := writeTempConfig(t, "awl.toml", `
[waterfurnace]
user = "file@example.com"

[awl]
cache_ttl = "30s"
`)
	setEnvVars(t, map[string]string{
		"WATERFURNACE_USER":     "env@example.com",
		"WATERFURNACE_PASSWORD": "secret",
		"AWL_CACHE_TTL":         "5s",
		"LOG_DIRECTORY":         t.TempDir(),
	})

	cfg, err := LoadStructuredConfig([]string{"-c", path})

	require.NoError(t, err)
	assert.Equal(t, "file@example.com", cfg.Symphony.User)
	assert.Equal(t, "secret", cfg.Symphony.Password)
	assert.Equal(t, 30*time.Second, cfg.AWL.CacheTTL)
}

func TestLoadStructuredConfig_EnvDisablesCache(t *testing.T) {
	setEnvVars(t, map[string]string{
		"WATERFURNACE_USER":     "me@example.com",
		"WATERFURNACE_PASSWORD": "secret",
		"AWL_CACHE_TTL":         "-1s",
		"LOG_DIRECTORY":         t.TempDir(),
	})

	cfg, err := LoadStructuredConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.AWL.CacheTTL)
	assert.Equal(t, 10*time.Second, cfg.AWL.APITimeout)
}

func TestLoadStructuredConfig_UnknownDSN(t *testing.T) {
	setEnvVars(t, map[string]string{
		"WATERFURNACE_USER":       "me@example.com",
		"WATERFURNACE_PASSWORD":   "secret",
		"STORAGE_DB_DATABASE_URI": "mysql://localhost/awl",
	})

	_, err := LoadStructuredConfig(nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── LoadClientConfig ──

func TestLoadClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadClientConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, "localhost:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RefreshInterval)
}

func TestLoadClientConfig_FlagsAndEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REFRESH_INTERVAL": "3s",
		"APP_ENV":                  "development",
	})

	cfg, err := LoadClientConfig([]string{"-bridge", "127.0.0.1:9000", "-token", "tkn"})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "tkn", cfg.Adapter.Token)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RefreshInterval)
}

// ── LoadTokenConfig ──

func TestLoadTokenConfig(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_SIGN_KEY": "secret"})

	app, err := LoadTokenConfig()

	require.NoError(t, err)
	assert.Equal(t, "secret", app.TokenSignKey)
	assert.Equal(t, "go-awl-bridge", app.TokenIssuer)
	assert.Equal(t, 30*24*time.Hour, app.TokenDuration)
}

func TestLoadTokenConfig_NoSignKey(t *testing.T) {
	clearEnvVars(t)

	_, err := LoadTokenConfig()

	assert.ErrorIs(t, err, ErrInvalidTokenConfigs)
}

// ── DriverFromDSN ──

func TestDriverFromDSN(t *testing.T) {
	tests := []struct {
		dsn     string
		want    string
		wantErr bool
	}{
		{dsn: "postgres://u:p@localhost/awl", want: DriverPostgres},
		{dsn: "postgresql://localhost/awl?sslmode=disable", want: DriverPostgres},
		{dsn: "file:readings.db?cache=shared", want: DriverSQLite},
		{dsn: "/var/lib/awl/readings.sqlite3", want: DriverSQLite},
		{dsn: "readings.db", want: DriverSQLite},
		{dsn: ":memory:", want: DriverSQLite},
		{dsn: "mysql://localhost/awl", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			got, err := DriverFromDSN(tt.dsn)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Helpers

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
