// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// secretFileSuffix marks a variable naming a file that holds the value of the
// same variable without the suffix, e.g. WATERFURNACE_PASSWORD_FILE.
const secretFileSuffix = "_FILE"

// secretPrefixes limits secret files to the variables of this application.
var secretPrefixes = []string{"APP_", "WATERFURNACE_", "STORAGE_", "ADAPTER_"}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// A variable set directly wins over its *_FILE counterpart.
func parseEnv(cfg any) error {
	environ, err := environWithSecrets(env.ToMap(os.Environ()))
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if err = env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func environWithSecrets(environ map[string]string) (map[string]string, error) {
	secrets := make(map[string]string)
	for key, path := range environ {
		name, ok := strings.CutSuffix(key, secretFileSuffix)
		if !ok || !hasSecretPrefix(name) || environ[name] != "" || path == "" {
			continue
		}

		value, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", key, err)
		}
		secrets[name] = strings.TrimSpace(string(value))
	}

	for name, value := range secrets {
		environ[name] = value
	}
	return environ, nil
}

func hasSecretPrefix(name string) bool {
	for _, prefix := range secretPrefixes {
		if strings.HasPrefix(name, prefix) && len(name) > len(prefix) {
			return true
		}
	}
	return false
}
