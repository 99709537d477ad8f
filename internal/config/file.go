// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// fileConfig is the on-disk layout shared by JSON and TOML configuration
// files.
type fileConfig struct {
	App struct {
		Env           string   `json:"env" toml:"env"`
		Version       string   `json:"version" toml:"version"`
		TokenSignKey  string   `json:"token_sign_key" toml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" toml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" toml:"token_duration"`
	} `json:"app" toml:"app"`

	Symphony struct {
		User           string   `json:"user" toml:"user"`
		Password       string   `json:"password" toml:"password"`
		LoginURL       string   `json:"login_url" toml:"login_url"`
		ConfigURL      string   `json:"config_url" toml:"config_url"`
		SessionTimeout Duration `json:"session_timeout" toml:"session_timeout"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"waterfurnace" toml:"waterfurnace"`

	AWL struct {
		TransactionTimeout    Duration `json:"transaction_timeout" toml:"transaction_timeout"`
		APITimeout            Duration `json:"api_timeout" toml:"api_timeout"`
		ConnectTimeout        Duration `json:"connect_timeout" toml:"connect_timeout"`
		LoginTimeout          Duration `json:"login_timeout" toml:"login_timeout"`
		WarnAfterDisconnected Duration `json:"warn_after_disconnected" toml:"warn_after_disconnected"`
		CacheTTL              Duration `json:"cache_ttl" toml:"cache_ttl"`
	} `json:"awl" toml:"awl"`

	Server struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"server" toml:"server"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db" toml:"db"`
	} `json:"storage" toml:"storage"`

	Workers struct {
		PollInterval Duration `json:"poll_interval" toml:"poll_interval"`
		Retention    Duration `json:"retention" toml:"retention"`
	} `json:"workers" toml:"workers"`

	Log struct {
		Level      string `json:"level" toml:"level"`
		Directory  string `json:"directory" toml:"directory"`
		AccessLog  string `json:"access_log" toml:"access_log"`
		TraceLog   string `json:"trace_log" toml:"trace_log"`
		MaxSizeMB  int    `json:"max_size_mb" toml:"max_size_mb"`
		MaxBackups int    `json:"max_backups" toml:"max_backups"`
	} `json:"log" toml:"log"`

	Adapter struct {
		HTTPAddress     string   `json:"http_address" toml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" toml:"request_timeout"`
		Token           string   `json:"token" toml:"token"`
		RefreshInterval Duration `json:"refresh_interval" toml:"refresh_interval"`
	} `json:"adapter" toml:"adapter"`
}

// parseFile reads the configuration file at path. Files with a ".toml"
// extension are decoded as TOML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err = toml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.structured(), nil
}

func (f fileConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env:           f.App.Env,
			Version:       f.App.Version,
			TokenSignKey:  f.App.TokenSignKey,
			TokenIssuer:   f.App.TokenIssuer,
			TokenDuration: time.Duration(f.App.TokenDuration),
		},
		Symphony: Symphony{
			User:           f.Symphony.User,
			Password:       f.Symphony.Password,
			LoginURL:       f.Symphony.LoginURL,
			ConfigURL:      f.Symphony.ConfigURL,
			SessionTimeout: time.Duration(f.Symphony.SessionTimeout),
			RequestTimeout: time.Duration(f.Symphony.RequestTimeout),
		},
		AWL: AWL{
			TransactionTimeout:    time.Duration(f.AWL.TransactionTimeout),
			APITimeout:            time.Duration(f.AWL.APITimeout),
			ConnectTimeout:        time.Duration(f.AWL.ConnectTimeout),
			LoginTimeout:          time.Duration(f.AWL.LoginTimeout),
			WarnAfterDisconnected: time.Duration(f.AWL.WarnAfterDisconnected),
			CacheTTL:              time.Duration(f.AWL.CacheTTL),
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: f.Storage.DB.DSN},
		},
		Workers: Workers{
			PollInterval: time.Duration(f.Workers.PollInterval),
			Retention:    time.Duration(f.Workers.Retention),
		},
		Log: Log{
			Level:      f.Log.Level,
			Directory:  f.Log.Directory,
			AccessLog:  f.Log.AccessLog,
			TraceLog:   f.Log.TraceLog,
			MaxSizeMB:  f.Log.MaxSizeMB,
			MaxBackups: f.Log.MaxBackups,
		},
		Adapter: Adapter{
			HTTPAddress:     f.Adapter.HTTPAddress,
			RequestTimeout:  time.Duration(f.Adapter.RequestTimeout),
			Token:           f.Adapter.Token,
			RefreshInterval: time.Duration(f.Adapter.RefreshInterval),
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and TOML, and from plain nanosecond numbers in
// JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler; go-toml uses it for
// string values.
func (d *Duration) UnmarshalText(b []byte) error {
	tmp, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
