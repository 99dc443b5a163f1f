// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mini-blog/internal/validators"
	"github.com/MKhiriev/go-mini-blog/models"
)

// CardValidationService rejects cards with invalid fields before they reach
// the wrapped CardService.
type CardValidationService struct {
	inner     CardService
	validator validators.Validator
}

func NewCardValidationService() CardServiceWrapper {
	return &CardValidationService{
		validator: validators.NewBlogValidator(),
	}
}

func (v *CardValidationService) Wrap(inner CardService) CardService {
	v.inner = inner
	return v
}

func (v *CardValidationService) Create(ctx context.Context, card models.CardDTO) (models.CardDTO, error) {
	if err := v.validator.Validate(ctx, card); err != nil {
		return models.CardDTO{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Create(ctx, card)
}

func (v *CardValidationService) Update(ctx context.Context, card models.CardDTO) (models.CardDTO, error) {
	if err := v.validator.Validate(ctx, card); err != nil {
		return models.CardDTO{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Update(ctx, card)
}

func (v *CardValidationService) Get(ctx context.Context, id int64) (models.CardDTO, error) {
	return v.inner.Get(ctx, id)
}

func (v *CardValidationService) List(ctx context.Context, pageRequest models.PageRequest) (models.Page[models.CardDTO], error) {
	return v.inner.List(ctx, pageRequest)
}

func (v *CardValidationService) Delete(ctx context.Context, id int64, username, password string) error {
	return v.inner.Delete(ctx, id, username, password)
}
