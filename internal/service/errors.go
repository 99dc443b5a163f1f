// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by a service wraps exactly one of
// them so the transport layer can pick a status with errors.Is.
var (
	// ErrValidation marks a structurally invalid request.
	ErrValidation = errors.New("validation failed")

	// ErrAuthorization marks absent or mismatching credentials. Messages
	// never reveal which of username or password was wrong.
	ErrAuthorization = errors.New("authorization failed")

	// ErrNotFound marks a read of a missing entity.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a write rejected by a uniqueness rule.
	ErrConflict = errors.New("conflict")
)

var (
	ErrCardIDExists       = fmt.Errorf("%w: a new card cannot already have an id", ErrValidation)
	ErrCardIDMissing      = fmt.Errorf("%w: card id is required", ErrValidation)
	ErrMissingAuthor      = fmt.Errorf("%w: author id or author username is required", ErrValidation)
	ErrMissingCredentials = fmt.Errorf("%w: author username and password are required", ErrValidation)
	ErrInvalidReference   = fmt.Errorf("%w: referenced author or category does not exist", ErrValidation)
	ErrInvalidSort        = fmt.Errorf("%w: unsupported sort field", ErrValidation)

	ErrInvalidCredentials = fmt.Errorf("%w: invalid credential", ErrAuthorization)

	ErrCardNotFound   = fmt.Errorf("card %w", ErrNotFound)
	ErrAuthorNotFound = fmt.Errorf("author %w", ErrNotFound)

	ErrUsernameTaken = fmt.Errorf("%w: username is already taken", ErrConflict)
)

// ErrVersionIsNotSpecified is returned at startup when no application
// version is configured.
var ErrVersionIsNotSpecified = errors.New("application version is not specified")
