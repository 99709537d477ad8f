// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-awl-bridge application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON or TOML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the runtime environment,
	// version and API token parameters.
	App App `envPrefix:"APP_"`

	// Symphony holds the vendor portal account and endpoints.
	Symphony Symphony `envPrefix:"WATERFURNACE_"`

	// AWL holds timeouts and cache settings of the AWL WebSocket session.
	AWL AWL `envPrefix:"AWL_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration of the reading history database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds log level and log file settings.
	Log Log `envPrefix:"LOG_"`

	// Adapter holds the settings the terminal monitor uses to reach a
	// running bridge.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// FilePath is the optional path to a JSON or TOML configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Env selects the default profile: "development" or "production".
	// Env: APP_ENV
	Env string `env:"ENV"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// TokenSignKey is the secret key used to sign and verify API bearer
	// tokens. Token authentication is disabled while it is empty.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an issued token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Symphony holds the vendor portal account and endpoint settings.
type Symphony struct {
	// User is the Symphony account e-mail address.
	// Env: WATERFURNACE_USER
	User string `env:"USER"`

	// Password is the Symphony account password.
	// Env: WATERFURNACE_PASSWORD
	Password string `env:"PASSWORD"`

	// LoginURL is the portal login endpoint; logout uses the same URL with
	// op=logout.
	// Env: WATERFURNACE_LOGIN_URL
	LoginURL string `env:"LOGIN_URL"`

	// ConfigURL is the JavaScript resource that carries the AWL WebSocket URI.
	// Env: WATERFURNACE_CONFIG_URL
	ConfigURL string `env:"CONFIG_URL"`

	// SessionTimeout is how long a portal session is kept before it is
	// renewed proactively.
	// Env: WATERFURNACE_SESSION_TIMEOUT
	SessionTimeout time.Duration `env:"SESSION_TIMEOUT"`

	// RequestTimeout bounds every portal HTTP request.
	// Env: WATERFURNACE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// AWL holds the WebSocket session settings.
type AWL struct {
	// TransactionTimeout bounds how long a single AWL command may stay
	// pending.
	// Env: AWL_TRANSACTION_TIMEOUT
	TransactionTimeout time.Duration `env:"TRANSACTION_TIMEOUT"`

	// APITimeout is how long an API read keeps retrying while the
	// connection is being re-established. A negative value disables
	// retries.
	// Env: AWL_API_TIMEOUT
	APITimeout time.Duration `env:"API_TIMEOUT"`

	// ConnectTimeout caps the backoff for connection errors. Zero retries
	// forever.
	// Env: AWL_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// LoginTimeout caps the backoff for login errors. Zero retries forever.
	// Env: AWL_LOGIN_TIMEOUT
	LoginTimeout time.Duration `env:"LOGIN_TIMEOUT"`

	// WarnAfterDisconnected is the outage length after which failed
	// reconnect attempts are logged at error level. A negative value logs
	// every failed attempt.
	// Env: AWL_WARN_AFTER_DISCONNECTED
	WarnAfterDisconnected time.Duration `env:"WARN_AFTER_DISCONNECTED"`

	// CacheTTL is how long a gateway reading is served from cache. A
	// negative value disables the cache.
	// Env: AWL_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "localhost:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the reading history store.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by its form: "postgres://..." or
	// "postgresql://..." opens PostgreSQL through pgx, "file:..." or a path
	// ending in ".db"/".sqlite" opens SQLite. Empty disables history.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PollInterval is how often the recorder reads every gateway. Zero
	// disables the recorder.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// Retention is how long recorded readings are kept. Zero keeps them
	// forever.
	// Env: WORKERS_RETENTION
	Retention time.Duration `env:"RETENTION"`
}

// Log holds logging configuration.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// Directory is where log files are written.
	// Env: LOG_DIRECTORY
	Directory string `env:"DIRECTORY"`

	// AccessLog is the access log file name inside Directory. Empty sends
	// access lines to the main log.
	// Env: LOG_ACCESS_LOG
	AccessLog string `env:"ACCESS_LOG"`

	// TraceLog is an optional debug log file name inside Directory. When
	// set, every debug-level line is also written there.
	// Env: LOG_TRACE_LOG
	TraceLog string `env:"TRACE_LOG"`

	// MaxSizeMB is the size at which log files are rotated.
	// Env: LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`

	// MaxBackups is the number of rotated files kept.
	// Env: LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS"`
}

// Adapter holds the settings the terminal monitor uses to reach a bridge.
type Adapter struct {
	// HTTPAddress is the bridge base address (e.g. "localhost:8000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every request to the bridge.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token presented to a bridge that requires one.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`

	// RefreshInterval is how often the monitor refreshes its view.
	// Env: ADAPTER_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Configuration file (path resolved from sources 1 and 2)
//
// Defaults for the selected App.Env profile fill whatever is still empty.
func GetStructuredConfig() (*StructuredConfig, error) {
	return LoadStructuredConfig(os.Args[1:])
}

// LoadStructuredConfig is GetStructuredConfig with explicit command-line
// arguments. It is safe to call repeatedly, which the server does to reload
// credentials on SIGHUP.
func LoadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		withDefaults().
		build()
}
