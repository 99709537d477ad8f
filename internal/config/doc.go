// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or TOML config file
//
// Defaults of the selected environment profile (APP_ENV) fill whatever is
// left empty. The main entry points are [GetStructuredConfig] for the bridge
// and [GetClientConfig] for the terminal monitor.
package config
