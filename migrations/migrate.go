// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the schema migrations for every supported SQL
// backend and applies them with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Backend names accepted by [Migrate]. They match the storage driver names
// used in configuration.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

var errNilDB = errors.New("migration error: db is nil")

// gooseDialects maps a backend to the goose dialect name and the embedded
// directory holding its migrations.
var gooseDialects = map[string]struct {
	dialect string
	dir     string
}{
	Postgres: {dialect: "pgx", dir: "postgres"},
	SQLite:   {dialect: "sqlite3", dir: "sqlite"},
}

// Migrate brings the schema of db up to date for the given backend.
func Migrate(db *sql.DB, backend string) error {
	if db == nil {
		return errNilDB
	}

	target, ok := gooseDialects[backend]
	if !ok {
		return fmt.Errorf("migration error: unsupported backend %q", backend)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(target.dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, target.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
