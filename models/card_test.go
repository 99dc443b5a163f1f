// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardFromDTO_DropsTransferOnlyFields(t *testing.T) {
	id, authorID, categoryID := int64(4), int64(2), int64(9)
	dto := CardDTO{
		ID:             &id,
		Name:           "hello",
		Status:         StatusDraft,
		Content:        "body",
		AuthorID:       &authorID,
		AuthorUsername: "alice",
		AuthorPassword: "secret-pass",
		CategoryID:     &categoryID,
		CategoryName:   "news",
	}

	card := CardFromDTO(dto)

	assert.Equal(t, int64(4), card.ID)
	assert.Equal(t, int64(2), card.AuthorID)
	assert.Equal(t, int64(9), *card.CategoryID)
	assert.Empty(t, card.AuthorUsername)
	assert.Empty(t, card.CategoryName)
}

func TestCardFromDTO_AbsentIDs(t *testing.T) {
	card := CardFromDTO(CardDTO{Name: "hello"})

	assert.Zero(t, card.ID)
	assert.Zero(t, card.AuthorID)
	assert.Nil(t, card.CategoryID)
}

func TestCardToDTO_NeverCarriesPassword(t *testing.T) {
	dto := CardToDTO(Card{ID: 1, Name: "hello", AuthorID: 2, AuthorUsername: "alice"})

	require.NotNil(t, dto.ID)
	require.NotNil(t, dto.AuthorID)
	assert.Equal(t, int64(1), *dto.ID)
	assert.Equal(t, "alice", dto.AuthorUsername)

	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "authorPassword")
	assert.Contains(t, string(raw), `"categoryId":null`)
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllowedStatuses {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Status("draft").IsValid())
	assert.False(t, Status("DELETED").IsValid())
}

func TestAuthor_Public(t *testing.T) {
	author := Author{ID: 1, Username: "alice", Password: "secret-pass"}

	public := author.Public()

	assert.Empty(t, public.Password)
	assert.Equal(t, "secret-pass", author.Password)
}
