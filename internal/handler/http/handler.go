// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-mini-blog/internal/config"
	"github.com/MKhiriev/go-mini-blog/internal/logger"
	"github.com/MKhiriev/go-mini-blog/internal/service"
	"github.com/MKhiriev/go-mini-blog/internal/utils"
)

type Handler struct {
	services *service.Services
	traceIDs *utils.UUIDGenerator
	alerts   alerts

	server config.Server
	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		traceIDs: utils.NewUUIDGenerator(),
		alerts:   alerts{appName: cfg.App.Name},
		server:   cfg.Server,
		logger:   logger,
	}
}
