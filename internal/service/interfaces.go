// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-mini-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CardService runs the card lifecycle.
type CardService interface {
	// Create stores a new card. The author is taken from AuthorID or, when
	// absent, found or provisioned by AuthorUsername.
	Create(ctx context.Context, card models.CardDTO) (models.CardDTO, error)

	// Update overwrites the card keyed by card.ID once the author
	// credentials carried by card are verified.
	Update(ctx context.Context, card models.CardDTO) (models.CardDTO, error)

	Get(ctx context.Context, id int64) (models.CardDTO, error)
	List(ctx context.Context, pageRequest models.PageRequest) (models.Page[models.CardDTO], error)

	// Delete removes the card once username and password are verified.
	Delete(ctx context.Context, id int64, username, password string) error
}

// AuthorService registers and reads authors. Returned authors never carry
// a password.
type AuthorService interface {
	Register(ctx context.Context, author models.Author) (models.Author, error)
	Get(ctx context.Context, id int64) (models.Author, error)
	GetByUsername(ctx context.Context, username string) (models.Author, error)
	ChangePassword(ctx context.Context, username, password, newPassword string) (models.Author, error)
}

// AuthorResolver turns an author reference into an author id.
type AuthorResolver interface {
	Resolve(ctx context.Context, authorID *int64, username string) (int64, error)
}

// CredentialGuard checks a username/password pair.
type CredentialGuard interface {
	Verify(ctx context.Context, username, password string) (bool, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// PasswordGenerator produces passwords for provisioned authors.
type PasswordGenerator interface {
	Generate() string
}

// CardServiceWrapper decorates a CardService with extra behavior such as
// validation.
type CardServiceWrapper interface {
	Wrap(CardService) CardService
}
