// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ConstraintViolation is the kind of integrity constraint a failed write
// ran into, as reported by [ErrorClassificator.Classify].
type ConstraintViolation int

const (
	// NoViolation means the error is not an integrity constraint error.
	NoViolation ConstraintViolation = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
)

// ErrorClassificator maps driver-specific errors to a [ConstraintViolation]
// so repositories can translate them into store sentinels without knowing
// which backend is in use.
type ErrorClassificator interface {
	Classify(err error) ConstraintViolation
}

// PostgresErrorClassifier inspects the SQLSTATE of *pgconn.PgError.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html (class 23).
func (c *PostgresErrorClassifier) Classify(err error) ConstraintViolation {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NoViolation
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	case pgerrcode.NotNullViolation:
		return NotNullViolation
	case pgerrcode.CheckViolation:
		return CheckViolation
	default:
		return NoViolation
	}
}

// SQLiteErrorClassifier inspects the extended result code of sqlite3.Error.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ConstraintViolation {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NoViolation
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	case sqlite3.ErrConstraintNotNull:
		return NotNullViolation
	case sqlite3.ErrConstraintCheck:
		return CheckViolation
	default:
		return NoViolation
	}
}
