// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Supported values of [DB.Driver].
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// StructuredConfig is the top-level configuration of the mini-blog server.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: name used in alert headers,
	// version and log level.
	App App `envPrefix:"APP_"`

	// Storage holds the persistence backend settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App groups application-wide settings.
type App struct {
	// Name prefixes the application alert headers (X-<Name>-alert).
	Name string `env:"NAME"`

	// Version is reported by GET /api/version.
	Version string `env:"VERSION"`

	// LogLevel is any zerolog level name. Defaults to debug.
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration of all storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the relational database connection settings.
type DB struct {
	// Driver selects the backend: postgres, sqlite or memory. When empty it
	// is inferred from DSN.
	Driver string `env:"DRIVER"`

	// DSN is the connection string (a postgres URL or a sqlite file path).
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the pool size. Zero keeps the default.
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// MaxIdleConns caps idle connections. Zero keeps the default.
	MaxIdleConns int `env:"MAX_IDLE_CONNS"`
}

// Server holds the HTTP listener settings.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// AllowedOrigins lists CORS origins. Empty disables CORS headers.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// GetStructuredConfig builds the configuration from every supported source
// and validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
