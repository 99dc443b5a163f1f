// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientConfig configures the command-line client.
type ClientConfig struct {
	// ServerAddress is the base URL of the mini-blog server.
	ServerAddress string `env:"CLIENT_SERVER_ADDRESS" envDefault:"http://localhost:8080"`

	// RequestTimeout bounds each request. Zero selects the client default.
	RequestTimeout time.Duration `env:"CLIENT_REQUEST_TIMEOUT"`

	LogLevel string `env:"CLIENT_LOG_LEVEL" envDefault:"warn"`
}

// GetClientConfig reads the client configuration from .env and the
// environment.
func GetClientConfig() (*ClientConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.ServerAddress) == "" {
		return nil, fmt.Errorf("%w: empty server address", ErrInvalidClientConfigs)
	}
	if cfg.RequestTimeout < 0 {
		return nil, fmt.Errorf("%w: negative request timeout", ErrInvalidClientConfigs)
	}

	return cfg, nil
}
