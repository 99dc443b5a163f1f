// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-mini-blog/internal/logger"
	"github.com/MKhiriev/go-mini-blog/migrations"
)

// Dialect carries what differs between SQL backends: the placeholder
// format squirrel renders, how constraint errors are recognised and which
// migration set applies.
type Dialect struct {
	name        string
	placeholder sq.PlaceholderFormat
	classifier  ErrorClassificator

	// serialSequences is set when ids come from a sequence that explicit-id
	// inserts do not advance.
	serialSequences bool
}

var (
	// PostgresDialect renders $n placeholders and classifies pgconn errors.
	PostgresDialect = Dialect{
		name:        migrations.Postgres,
		placeholder: sq.Dollar,
		classifier:  NewPostgresErrorClassifier(),

		serialSequences: true,
	}

	// SQLiteDialect renders ? placeholders and classifies sqlite3 errors.
	SQLiteDialect = Dialect{
		name:        migrations.SQLite,
		placeholder: sq.Question,
		classifier:  NewSQLiteErrorClassifier(),
	}
)

// DB is a *sql.DB bound to a [Dialect].
type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

// NewDB wraps an already opened connection.
func NewDB(conn *sql.DB, dialect Dialect, logger *logger.Logger) *DB {
	return &DB{
		DB:      conn,
		dialect: dialect,
		logger:  logger,
	}
}

// Migrate applies the embedded schema migrations of the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.name)
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.placeholder)
}

func (db *DB) classify(err error) ConstraintViolation {
	if db.dialect.classifier == nil {
		return NoViolation
	}
	return db.dialect.classifier.Classify(err)
}
