// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultAppName         = "miniblogApp"
	defaultHTTPAddress     = ":8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// applyDefaults fills settings left empty by every source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Name == "" {
		cfg.App.Name = defaultAppName
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = inferDriver(cfg.Storage.DB.DSN)
	}
	cfg.Storage.DB.Driver = strings.ToLower(cfg.Storage.DB.Driver)
}

// inferDriver guesses the backend from a DSN: postgres URLs and key/value
// strings map to postgres, an empty DSN to the in-memory store and
// anything else to a sqlite file.
func inferDriver(dsn string) string {
	switch {
	case dsn == "":
		return DriverMemory
	case strings.HasPrefix(dsn, "postgres://"),
		strings.HasPrefix(dsn, "postgresql://"),
		strings.Contains(dsn, "host="):
		return DriverPostgres
	default:
		return DriverSQLite
	}
}

// validate checks the merged configuration before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverMemory:
		return nil
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: DSN is required for %s", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
}
