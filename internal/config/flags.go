// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-u Symphony account e-mail
//	-p Symphony account password
//	-env environment profile (development, production)
//	-d database DSN for reading history
//	-c/-config JSON or TOML file path with configs
//	-log-level log level
//	-log-dir log directory
//	-token-sign-key API token signing key
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-poll-interval reading recorder interval (e.g., "5m")
//	-bridge bridge address used by the terminal monitor
//	-token bearer token used by the terminal monitor
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-awl-bridge", flag.ContinueOnError)

	var serverAddress NetAddress
	var user, password, profile string
	var databaseDSN string
	var filePath string
	var logLevel, logDir string
	var tokenSignKey string
	var requestTimeout, pollInterval time.Duration
	var bridgeAddress, bridgeToken string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&user, "u", "", "Symphony account e-mail")
	fs.StringVar(&password, "p", "", "Symphony account password")
	fs.StringVar(&profile, "env", "", "Environment profile (development, production)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&filePath, "c", "", "JSON or TOML config file path")
	fs.StringVar(&filePath, "config", "", "JSON or TOML config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logDir, "log-dir", "", "Log directory")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "API token signing key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Reading recorder interval (e.g., 5m)")
	fs.StringVar(&bridgeAddress, "bridge", "", "Bridge address for the terminal monitor")
	fs.StringVar(&bridgeToken, "token", "", "Bearer token for the terminal monitor")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Env:          profile,
			TokenSignKey: tokenSignKey,
		},
		Symphony: Symphony{
			User:     user,
			Password: password,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			PollInterval: pollInterval,
		},
		Log: Log{
			Level:     logLevel,
			Directory: logDir,
		},
		Adapter: Adapter{
			HTTPAddress: bridgeAddress,
			Token:       bridgeToken,
		},
		FilePath: filePath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
