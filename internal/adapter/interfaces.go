// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to a running mini-blog server over its REST API.
//
// [BlogClient] hides the HTTP details from callers such as the command-line
// client. Non-2xx responses are mapped by mapHTTPError to the sentinel
// errors of this package so callers can branch with [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-mini-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BlogClient is a typed client of the mini-blog REST API.
type BlogClient interface {
	// CreateCard posts a new card. The author is given by AuthorID or
	// AuthorUsername; an unknown username is provisioned by the server.
	CreateCard(ctx context.Context, card models.CardDTO) (models.CardDTO, error)

	// UpdateCard overwrites a card. card must carry the author username and
	// password.
	UpdateCard(ctx context.Context, card models.CardDTO) (models.CardDTO, error)

	GetCard(ctx context.Context, id int64) (models.CardDTO, error)

	// ListCards fetches one page of cards. The total is read from the
	// X-Total-Count response header.
	ListCards(ctx context.Context, pageRequest models.PageRequest) (models.Page[models.CardDTO], error)

	DeleteCard(ctx context.Context, id int64, username, password string) error

	RegisterAuthor(ctx context.Context, author models.Author) (models.Author, error)
	GetAuthor(ctx context.Context, id int64) (models.Author, error)
	ChangePassword(ctx context.Context, username, password, newPassword string) (models.Author, error)

	// Version returns the server application version.
	Version(ctx context.Context) (string, error)
}
