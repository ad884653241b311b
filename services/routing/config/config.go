// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package config loads the routing service configuration.
//
// Configuration comes from three layers, later layers winning:
//  1. Built-in defaults (DefaultConfig)
//  2. An optional YAML file
//  3. Environment variables (ROUTING_PORT, COUNTRIES_API_URL, ...)
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the routing service configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port int `yaml:"port"`

	// CountriesURL is the upstream dataset endpoint.
	CountriesURL string `yaml:"countries_url"`

	// FetchTimeout bounds the startup dataset fetch.
	FetchTimeout time.Duration `yaml:"fetch_timeout"`

	// CacheEnabled toggles route memoization. Disabling it recomputes
	// every request; useful when benchmarking the raw search.
	CacheEnabled bool `yaml:"cache_enabled"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// RateLimit caps requests per second on the routing endpoints.
	// Zero disables rate limiting.
	RateLimit float64 `yaml:"rate_limit"`

	// RateBurst is the burst allowance when RateLimit is set.
	RateBurst int `yaml:"rate_burst"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Port:         8080,
		CountriesURL: "https://raw.githubusercontent.com/mledoze/countries/master/countries.json",
		FetchTimeout: 30 * time.Second,
		CacheEnabled: true,
		LogLevel:     "info",
		RateLimit:    0,
		RateBurst:    20,
	}
}

// Load builds the effective configuration.
//
// path may be empty, in which case only defaults and environment overrides
// apply. A missing file at a non-empty path is an error; a config file you
// asked for but cannot read should not silently degrade to defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto cfg.
func applyEnv(cfg *Config) error {
	if v := os.Getenv("ROUTING_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid ROUTING_PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("COUNTRIES_API_URL"); v != "" {
		cfg.CountriesURL = v
	}
	if v := os.Getenv("ROUTING_FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid ROUTING_FETCH_TIMEOUT %q: %w", v, err)
		}
		cfg.FetchTimeout = d
	}
	if v := os.Getenv("ROUTING_CACHE_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid ROUTING_CACHE_ENABLED %q: %w", v, err)
		}
		cfg.CacheEnabled = enabled
	}
	if v := os.Getenv("ROUTING_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("ROUTING_RATE_LIMIT"); v != "" {
		limit, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid ROUTING_RATE_LIMIT %q: %w", v, err)
		}
		cfg.RateLimit = limit
	}
	return nil
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.CountriesURL == "" {
		return fmt.Errorf("countries_url must not be empty")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit must not be negative")
	}
	return nil
}
