// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mini-blog/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validCard() models.CardDTO {
	return models.CardDTO{
		Name:           "Hello",
		Status:         models.StatusDraft,
		AuthorUsername: "alice",
	}
}

func validAuthor() models.Author {
	return models.Author{Username: "alice", Password: "secret123"}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewBlogValidator()
	ctx := context.Background()

	card := validCard()
	author := validAuthor()

	assert.NoError(t, v.Validate(ctx, card))
	assert.NoError(t, v.Validate(ctx, &card))
	assert.NoError(t, v.Validate(ctx, author))
	assert.NoError(t, v.Validate(ctx, &author))
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// Card
// ---------------------------------------------------------------------------

func TestValidateCard(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*models.CardDTO)
		fields  []string
		wantErr error
	}{
		{name: "valid", modify: func(*models.CardDTO) {}},
		{name: "unset status is allowed", modify: func(c *models.CardDTO) { c.Status = models.StatusUnset }},
		{name: "empty author username is allowed", modify: func(c *models.CardDTO) { c.AuthorUsername = "" }},
		{name: "missing name", modify: func(c *models.CardDTO) { c.Name = "" }, wantErr: ErrInvalidCardName},
		{name: "name too long", modify: func(c *models.CardDTO) { c.Name = strings.Repeat("x", 256) }, wantErr: ErrInvalidCardName},
		{name: "name at limit", modify: func(c *models.CardDTO) { c.Name = strings.Repeat("я", 255) }},
		{name: "unknown status", modify: func(c *models.CardDTO) { c.Status = "DELETED" }, wantErr: ErrInvalidStatus},
		{name: "username too long", modify: func(c *models.CardDTO) { c.AuthorUsername = strings.Repeat("u", 51) }, wantErr: ErrInvalidAuthorUsername},
		{
			name:   "scoped to status ignores name",
			modify: func(c *models.CardDTO) { c.Name = "" },
			fields: []string{FieldStatus},
		},
		{name: "unknown field", modify: func(*models.CardDTO) {}, fields: []string{"content"}, wantErr: ErrUnknownField},
	}

	v := NewBlogValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := validCard()
			tt.modify(&card)

			err := v.Validate(context.Background(), card, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Author
// ---------------------------------------------------------------------------

func TestValidateAuthor(t *testing.T) {
	tests := []struct {
		name    string
		author  models.Author
		fields  []string
		wantErr error
	}{
		{name: "valid", author: validAuthor()},
		{name: "missing username", author: models.Author{Password: "secret123"}, wantErr: ErrInvalidUsername},
		{name: "missing password", author: models.Author{Username: "alice"}, wantErr: ErrInvalidPassword},
		{name: "short password", author: models.Author{Username: "alice", Password: "1234567"}, wantErr: ErrInvalidPassword},
		{name: "password of eight", author: models.Author{Username: "alice", Password: "12345678"}},
		{name: "blank password", author: models.Author{Username: "alice", Password: "        "}, wantErr: ErrInvalidPassword},
		{name: "tabs and newlines", author: models.Author{Username: "alice", Password: "\t\t\n\n    "}, wantErr: ErrInvalidPassword},
		{name: "password with inner spaces", author: models.Author{Username: "alice", Password: "correct horse"}},
		{name: "password only", author: models.Author{Password: "12345678"}, fields: []string{FieldPassword}},
		{name: "unknown field", author: validAuthor(), fields: []string{"email"}, wantErr: ErrUnknownField},
	}

	v := NewBlogValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.author, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
