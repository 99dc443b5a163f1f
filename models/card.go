// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Card is the persisted form of a published post.
//
// AuthorUsername and CategoryName are read-only denormalizations filled by
// the store on reads; they are ignored on writes.
type Card struct {
	ID         int64
	Name       string
	Status     Status
	Content    string
	AuthorID   int64
	CategoryID *int64

	AuthorUsername string
	CategoryName   string
}

// TableName returns the name of the database table
// associated with the Card model.
func (c Card) TableName() string {
	return "card"
}

// CardDTO is the boundary representation of a card.
//
// Identifiers are pointers so that an absent value can be told apart from
// zero. AuthorPassword is write-only: it is consumed by the credential check
// and never persisted on the card nor echoed back to the caller.
type CardDTO struct {
	ID      *int64 `json:"id"`
	Name    string `json:"name"`
	Status  Status `json:"status,omitempty"`
	Content string `json:"content,omitempty"`

	AuthorID       *int64 `json:"authorId"`
	AuthorUsername string `json:"authorUsername,omitempty"`
	AuthorPassword string `json:"authorPassword,omitempty"`

	CategoryID   *int64 `json:"categoryId"`
	CategoryName string `json:"categoryName,omitempty"`
}

// CardFromDTO converts the transfer shape into a card ready to be written.
// Read-only and write-only transfer fields are dropped.
func CardFromDTO(dto CardDTO) Card {
	card := Card{
		Name:       dto.Name,
		Status:     dto.Status,
		Content:    dto.Content,
		CategoryID: dto.CategoryID,
	}
	if dto.ID != nil {
		card.ID = *dto.ID
	}
	if dto.AuthorID != nil {
		card.AuthorID = *dto.AuthorID
	}

	return card
}

// CardToDTO converts a stored card into its transfer shape. The password
// field is always left empty.
func CardToDTO(card Card) CardDTO {
	id := card.ID
	authorID := card.AuthorID

	return CardDTO{
		ID:             &id,
		Name:           card.Name,
		Status:         card.Status,
		Content:        card.Content,
		AuthorID:       &authorID,
		AuthorUsername: card.AuthorUsername,
		CategoryID:     card.CategoryID,
		CategoryName:   card.CategoryName,
	}
}
