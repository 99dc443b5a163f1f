// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an author insert or update
	// collides with the unique username constraint.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrAuthorNotFound is returned when no author matches the lookup.
	ErrAuthorNotFound = errors.New("author was not found")

	// ErrCardNotFound is returned when no card matches the given id.
	ErrCardNotFound = errors.New("card was not found")

	// ErrCategoryNotFound is returned when no category matches the given id.
	ErrCategoryNotFound = errors.New("category was not found")

	// ErrInvalidReference is returned when a card points at an author or a
	// category that does not exist.
	ErrInvalidReference = errors.New("card references a missing author or category")

	// ErrConstraintViolation is returned for any other rejected write
	// (not-null or check constraints).
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrUnsupportedSortField is returned when a page request asks to sort
	// on a column that is not sortable.
	ErrUnsupportedSortField = errors.New("unsupported sort field")
)

// Low-level database operation errors, wrapped together with the driver error.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT or RETURNING query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when a single result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
