// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/MKhiriev/go-mini-blog/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the card title.
	FieldName = "name"

	// FieldStatus targets the card publication status.
	FieldStatus = "status"

	// FieldAuthorUsername targets the username carried by a card transfer
	// object. It may be empty when the author is referenced by id.
	FieldAuthorUsername = "author_username"

	// FieldUsername targets the username of an author.
	FieldUsername = "username"

	// FieldPassword targets the password of an author.
	FieldPassword = "password"
)

const (
	MaxCardNameLength = 255
	MaxUsernameLength = 50
	MinPasswordLength = 8
)

// notBlank rejects values made only of whitespace.
var notBlank = validation.Match(regexp.MustCompile(`\S`)).Error("must not be blank")

var allowedStatuses = func() []any {
	statuses := make([]any, 0, len(models.AllowedStatuses))
	for _, s := range models.AllowedStatuses {
		statuses = append(statuses, s)
	}
	return statuses
}()

// BlogValidator implements [Validator] for cards and authors.
type BlogValidator struct{}

// NewBlogValidator constructs a [BlogValidator].
func NewBlogValidator() Validator {
	return &BlogValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.CardDTO / *models.CardDTO
//   - models.Author / *models.Author
//
// Returns ErrUnsupportedType for anything else.
func (v *BlogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CardDTO:
		return v.validateCard(ctx, value, fields...)
	case *models.CardDTO:
		return v.validateCard(ctx, *value, fields...)

	case models.Author:
		return v.validateAuthor(ctx, value, fields...)
	case *models.Author:
		return v.validateAuthor(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCard checks the writable fields of a card transfer object.
//
// Default validated fields: name, status, author_username.
func (v *BlogValidator) validateCard(_ context.Context, card models.CardDTO, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldStatus, FieldAuthorUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validation.Validate(card.Name,
				validation.Required.Error("name is required"),
				validation.RuneLength(1, MaxCardNameLength),
			); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidCardName, err)
			}
		case FieldStatus:
			if err := validation.Validate(card.Status,
				validation.In(allowedStatuses...).Error("must be one of DRAFT, PUBLISHED, ARCHIVED"),
			); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidStatus, err)
			}
		case FieldAuthorUsername:
			if err := validation.Validate(card.AuthorUsername,
				validation.RuneLength(0, MaxUsernameLength),
			); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidAuthorUsername, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateAuthor checks an author about to be stored.
//
// Default validated fields: username, password.
func (v *BlogValidator) validateAuthor(_ context.Context, author models.Author, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validation.Validate(author.Username,
				validation.Required.Error("username is required"),
				validation.RuneLength(1, MaxUsernameLength),
			); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidUsername, err)
			}
		case FieldPassword:
			if err := validation.Validate(author.Password,
				validation.Required.Error("password is required"),
				validation.RuneLength(MinPasswordLength, 0),
				notBlank,
			); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidPassword, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
