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

type cardService struct {
	cards      store.CardRepository
	categories store.CategoryRepository
	resolver   AuthorResolver
	guard      CredentialGuard

	logger *logger.Logger
}

func NewCardService(
	cards store.CardRepository,
	categories store.CategoryRepository,
	resolver AuthorResolver,
	guard CredentialGuard,
	logger *logger.Logger,
) CardService {
	return &cardService{
		cards:      cards,
		categories: categories,
		resolver:   resolver,
		guard:      guard,
		logger:     logger,
	}
}

func (s *cardService) Create(ctx context.Context, dto models.CardDTO) (models.CardDTO, error) {
	if dto.ID != nil {
		return models.CardDTO{}, ErrCardIDExists
	}
	if dto.AuthorID == nil && isBlank(dto.AuthorUsername) {
		return models.CardDTO{}, ErrMissingAuthor
	}
	if err := s.checkCategory(ctx, dto.CategoryID); err != nil {
		return models.CardDTO{}, err
	}

	authorID, err := s.resolver.Resolve(ctx, dto.AuthorID, dto.AuthorUsername)
	if err != nil {
		return models.CardDTO{}, err
	}

	card := models.CardFromDTO(dto)
	card.AuthorID = authorID

	created, err := s.cards.CreateCard(ctx, card)
	if err != nil {
		return models.CardDTO{}, mapCardStoreError(err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*cardService.Create").
		Int64("card_id", created.ID).
		Int64("author_id", created.AuthorID).
		Msg("card created")

	return models.CardToDTO(created), nil
}

// Update authorizes the caller before touching the store. An explicit
// AuthorID is kept as given; otherwise the card is attributed to the
// verified author.
func (s *cardService) Update(ctx context.Context, dto models.CardDTO) (models.CardDTO, error) {
	if dto.ID == nil || *dto.ID <= 0 {
		return models.CardDTO{}, ErrCardIDMissing
	}
	if dto.AuthorID == nil && isBlank(dto.AuthorUsername) {
		return models.CardDTO{}, ErrMissingAuthor
	}
	if isBlank(dto.AuthorUsername) || isBlank(dto.AuthorPassword) {
		return models.CardDTO{}, ErrMissingCredentials
	}

	if err := s.authorize(ctx, dto.AuthorUsername, dto.AuthorPassword); err != nil {
		return models.CardDTO{}, err
	}
	if err := s.checkCategory(ctx, dto.CategoryID); err != nil {
		return models.CardDTO{}, err
	}

	authorID, err := s.resolver.Resolve(ctx, dto.AuthorID, dto.AuthorUsername)
	if err != nil {
		return models.CardDTO{}, err
	}

	card := models.CardFromDTO(dto)
	card.AuthorID = authorID

	saved, err := s.cards.SaveCard(ctx, card)
	if err != nil {
		return models.CardDTO{}, mapCardStoreError(err)
	}

	logger.FromContext(ctx).Info().Str("func", "*cardService.Update").Int64("card_id", saved.ID).Msg("card updated")

	return models.CardToDTO(saved), nil
}

func (s *cardService) Get(ctx context.Context, id int64) (models.CardDTO, error) {
	card, err := s.cards.GetCard(ctx, id)
	if err != nil {
		return models.CardDTO{}, mapCardStoreError(err)
	}

	return models.CardToDTO(card), nil
}

func (s *cardService) List(ctx context.Context, pageRequest models.PageRequest) (models.Page[models.CardDTO], error) {
	page, err := s.cards.ListCards(ctx, pageRequest)
	if err != nil {
		return models.Page[models.CardDTO]{}, mapCardStoreError(err)
	}

	return models.MapPage(page, models.CardToDTO), nil
}

// Delete ignores whether the card exists: credentials are checked first and
// a missing card is a no-op.
func (s *cardService) Delete(ctx context.Context, id int64, username, password string) error {
	if isBlank(username) || isBlank(password) {
		return ErrMissingCredentials
	}
	if err := s.authorize(ctx, username, password); err != nil {
		return err
	}

	if err := s.cards.DeleteCard(ctx, id); err != nil {
		return fmt.Errorf("error deleting card: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "*cardService.Delete").Int64("card_id", id).Msg("card deleted")

	return nil
}

func (s *cardService) authorize(ctx context.Context, username, password string) error {
	ok, err := s.guard.Verify(ctx, username, password)
	if err != nil {
		return err
	}
	if !ok {
		logger.FromContext(ctx).Warn().Str("func", "*cardService.authorize").Msg("credential check failed")
		return ErrInvalidCredentials
	}

	return nil
}

func (s *cardService) checkCategory(ctx context.Context, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}

	_, err := s.categories.GetCategory(ctx, *categoryID)
	if errors.Is(err, store.ErrCategoryNotFound) {
		return ErrInvalidReference
	}
	if err != nil {
		return fmt.Errorf("error looking up category: %w", err)
	}

	return nil
}

func mapCardStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrCardNotFound):
		return ErrCardNotFound
	case errors.Is(err, store.ErrInvalidReference):
		return ErrInvalidReference
	case errors.Is(err, store.ErrUnsupportedSortField):
		return fmt.Errorf("%w: %w", ErrInvalidSort, err)
	case errors.Is(err, store.ErrConstraintViolation):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	default:
		return err
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
