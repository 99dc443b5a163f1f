// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-mini-blog/internal/config"
	"github.com/MKhiriev/go-mini-blog/internal/handler"
	"github.com/MKhiriev/go-mini-blog/internal/logger"
	"github.com/MKhiriev/go-mini-blog/internal/server"
	"github.com/MKhiriev/go-mini-blog/internal/service"
	"github.com/MKhiriev/go-mini-blog/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("mini-blog-server").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log := logger.NewLogger("mini-blog-server", cfg.App.LogLevel)
	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Msg("received configs")

	srv, storages, err := newServer(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error assembling server")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	srv.RunServer()
}

// newServer wires storages, services and handlers for cfg. The caller owns
// the returned storages and must close them.
func newServer(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (server.Server, *store.Storages, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating storages: %w", err)
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		return nil, nil, errors.Join(fmt.Errorf("error creating services: %w", err), storages.Close())
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		return nil, nil, errors.Join(fmt.Errorf("error creating handlers: %w", err), storages.Close())
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return nil, nil, errors.Join(fmt.Errorf("error creating server: %w", err), storages.Close())
	}

	return srv, storages, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
