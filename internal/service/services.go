// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-mini-blog/internal/config"
	"github.com/MKhiriev/go-mini-blog/internal/logger"
	"github.com/MKhiriev/go-mini-blog/internal/store"
	"github.com/MKhiriev/go-mini-blog/internal/utils"
)

// GeneratedPasswordLength is the length of passwords given to authors
// provisioned on first use.
const GeneratedPasswordLength = 12

type Services struct {
	CardService    CardService
	AuthorService  AuthorService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	guard := NewCredentialGuard(storages.AuthorRepository, logger)
	resolver := NewAuthorResolver(storages.AuthorRepository, utils.NewPasswordGenerator(GeneratedPasswordLength), logger)

	cardService := NewCardValidationService().Wrap(
		NewCardService(storages.CardRepository, storages.CategoryRepository, resolver, guard, logger),
	)

	return &Services{
		CardService:    cardService,
		AuthorService:  NewAuthorService(storages.AuthorRepository, guard, logger),
		AppInfoService: appInfoService,
	}, nil
}
