// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-mini-blog/internal/config"
	"github.com/MKhiriev/go-mini-blog/internal/logger"
)

// blogInfoService reports the build of the running blog server. The version
// is fixed at startup.
type blogInfoService struct {
	version string
}

// NewAppInfoService requires a non-blank version since GET /api/version has
// nothing else to serve.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().
		Str("blog", cfg.Name).
		Str("version", version).
		Msg("serving mini-blog build")

	return &blogInfoService{version: version}, nil
}

func (s *blogInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
