// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-mini-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AuthorRepository persists authors. Usernames are unique.
type AuthorRepository interface {
	// GetAuthorByID returns [ErrAuthorNotFound] when no author has id.
	GetAuthorByID(ctx context.Context, id int64) (models.Author, error)

	// FindAuthorByUsername returns [ErrAuthorNotFound] when no author has
	// username.
	FindAuthorByUsername(ctx context.Context, username string) (models.Author, error)

	// CreateAuthor inserts author and returns it with its new id. A taken
	// username yields [ErrUsernameAlreadyExists].
	CreateAuthor(ctx context.Context, author models.Author) (models.Author, error)

	// UpdateAuthor overwrites username and password of the author with
	// author.ID.
	UpdateAuthor(ctx context.Context, author models.Author) (models.Author, error)
}

// CardRepository persists cards.
type CardRepository interface {
	// GetCard returns [ErrCardNotFound] when no card has id.
	GetCard(ctx context.Context, id int64) (models.Card, error)

	// CreateCard inserts card with a generated id.
	CreateCard(ctx context.Context, card models.Card) (models.Card, error)

	// SaveCard overwrites the card keyed by card.ID, creating it when the
	// id does not exist yet.
	SaveCard(ctx context.Context, card models.Card) (models.Card, error)

	// DeleteCard removes the card. Deleting a missing card is not an error.
	DeleteCard(ctx context.Context, id int64) error

	// ListCards returns one page of cards and the total count.
	ListCards(ctx context.Context, pageRequest models.PageRequest) (models.Page[models.Card], error)
}

// CategoryRepository reads categories. Categories are managed elsewhere.
type CategoryRepository interface {
	GetCategory(ctx context.Context, id int64) (models.Category, error)
}
