// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-mini-blog/internal/logger"
	"github.com/MKhiriev/go-mini-blog/internal/store"
)

type credentialGuard struct {
	authors store.AuthorRepository

	logger *logger.Logger
}

func NewCredentialGuard(authors store.AuthorRepository, logger *logger.Logger) CredentialGuard {
	return &credentialGuard{
		authors: authors,
		logger:  logger,
	}
}

// Verify reports whether an author named username exists and its stored
// password equals password. Passwords are stored and compared in plain
// text.
func (g *credentialGuard) Verify(ctx context.Context, username, password string) (bool, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return false, nil
	}

	author, err := g.authors.FindAuthorByUsername(ctx, username)
	if errors.Is(err, store.ErrAuthorNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error looking up author for credential check: %w", err)
	}

	return author.Password == password, nil
}
