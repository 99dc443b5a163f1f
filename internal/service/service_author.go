// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-mini-blog/internal/logger"
	"github.com/MKhiriev/go-mini-blog/internal/store"
	"github.com/MKhiriev/go-mini-blog/internal/validators"
	"github.com/MKhiriev/go-mini-blog/models"
)

type authorService struct {
	authors   store.AuthorRepository
	guard     CredentialGuard
	validator validators.Validator

	logger *logger.Logger
}

func NewAuthorService(authors store.AuthorRepository, guard CredentialGuard, logger *logger.Logger) AuthorService {
	return &authorService{
		authors:   authors,
		guard:     guard,
		validator: validators.NewBlogValidator(),
		logger:    logger,
	}
}

func (s *authorService) Register(ctx context.Context, author models.Author) (models.Author, error) {
	if err := s.validator.Validate(ctx, author); err != nil {
		return models.Author{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	author.ID = 0
	created, err := s.authors.CreateAuthor(ctx, author)
	if err != nil {
		return models.Author{}, mapAuthorStoreError(err)
	}

	logger.FromContext(ctx).Info().Str("func", "*authorService.Register").Int64("author_id", created.ID).Msg("author registered")

	return created.Public(), nil
}

func (s *authorService) Get(ctx context.Context, id int64) (models.Author, error) {
	author, err := s.authors.GetAuthorByID(ctx, id)
	if err != nil {
		return models.Author{}, mapAuthorStoreError(err)
	}

	return author.Public(), nil
}

func (s *authorService) GetByUsername(ctx context.Context, username string) (models.Author, error) {
	author, err := s.authors.FindAuthorByUsername(ctx, username)
	if err != nil {
		return models.Author{}, mapAuthorStoreError(err)
	}

	return author.Public(), nil
}

// ChangePassword replaces the password of username after verifying the
// current one.
func (s *authorService) ChangePassword(ctx context.Context, username, password, newPassword string) (models.Author, error) {
	if isBlank(username) || isBlank(password) {
		return models.Author{}, ErrMissingCredentials
	}
	if err := s.validator.Validate(ctx, models.Author{Password: newPassword}, validators.FieldPassword); err != nil {
		return models.Author{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	ok, err := s.guard.Verify(ctx, username, password)
	if err != nil {
		return models.Author{}, err
	}
	if !ok {
		return models.Author{}, ErrInvalidCredentials
	}

	author, err := s.authors.FindAuthorByUsername(ctx, username)
	if err != nil {
		return models.Author{}, mapAuthorStoreError(err)
	}

	author.Password = newPassword
	updated, err := s.authors.UpdateAuthor(ctx, author)
	if err != nil {
		return models.Author{}, mapAuthorStoreError(err)
	}

	logger.FromContext(ctx).Info().Str("func", "*authorService.ChangePassword").Int64("author_id", updated.ID).Msg("author password changed")

	return updated.Public(), nil
}

func mapAuthorStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrAuthorNotFound):
		return ErrAuthorNotFound
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return ErrUsernameTaken
	case errors.Is(err, store.ErrConstraintViolation):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	default:
		return err
	}
}
