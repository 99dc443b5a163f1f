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
	"github.com/MKhiriev/go-mini-blog/models"
)

type authorResolver struct {
	authors   store.AuthorRepository
	passwords PasswordGenerator

	logger *logger.Logger
}

func NewAuthorResolver(authors store.AuthorRepository, passwords PasswordGenerator, logger *logger.Logger) AuthorResolver {
	return &authorResolver{
		authors:   authors,
		passwords: passwords,
		logger:    logger,
	}
}

// Resolve returns authorID when it is set. Otherwise it looks the author up
// by username and provisions one with a generated password if none exists.
//
// Find-then-insert is not atomic: when two callers provision the same
// username, the loser gets store.ErrUsernameAlreadyExists and re-reads the
// winner's row once.
func (r *authorResolver) Resolve(ctx context.Context, authorID *int64, username string) (int64, error) {
	if authorID != nil {
		return *authorID, nil
	}
	if strings.TrimSpace(username) == "" {
		return 0, ErrMissingAuthor
	}

	log := logger.FromContext(ctx)

	author, err := r.authors.FindAuthorByUsername(ctx, username)
	if err == nil {
		return author.ID, nil
	}
	if !errors.Is(err, store.ErrAuthorNotFound) {
		return 0, fmt.Errorf("error looking up author by username: %w", err)
	}

	created, err := r.authors.CreateAuthor(ctx, models.Author{
		Username: username,
		Password: r.passwords.Generate(),
	})
	if err == nil {
		log.Info().Str("func", "*authorResolver.Resolve").Int64("author_id", created.ID).Msg("provisioned new author")
		return created.ID, nil
	}
	if !errors.Is(err, store.ErrUsernameAlreadyExists) {
		return 0, fmt.Errorf("error provisioning author: %w", err)
	}

	log.Debug().Str("func", "*authorResolver.Resolve").Msg("author provisioned concurrently, re-reading")
	author, err = r.authors.FindAuthorByUsername(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("error re-reading author after username conflict: %w", err)
	}

	return author.ID, nil
}
