// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs  []*StructuredConfig
	defaults *StructuredConfig
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected sources in order, later sources overriding
// earlier non-zero fields, then fills the remaining zero fields from the
// defaults and validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if b.defaults == nil {
		return config, nil
	}

	if err := mergo.Merge(config, b.defaults); err != nil {
		return nil, fmt.Errorf("error merging default configs: %w", err)
	}
	config.AWL.resolveDisabled()

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withFile() *configBuilder {
	var filePath string
	for _, cfg := range b.configs {
		if cfg.FilePath != "" {
			filePath = cfg.FilePath
		}
	}

	if filePath == "" {
		return b
	}

	fileCfg, err := parseFile(filePath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, fileCfg)

	return b
}

// withDefaults resolves the environment profile from the sources collected
// so far and registers its defaults. It must be the last step before build.
func (b *configBuilder) withDefaults() *configBuilder {
	var profile string
	for _, cfg := range b.configs {
		if cfg.App.Env != "" {
			profile = cfg.App.Env
		}
	}

	b.defaults = defaultsFor(profile)
	return b
}
