// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-mini-blog/internal/config"
	"github.com/MKhiriev/go-mini-blog/internal/logger"
)

// Storages groups the repositories the service layer depends on.
type Storages struct {
	AuthorRepository   AuthorRepository
	CardRepository     CardRepository
	CategoryRepository CategoryRepository

	closer io.Closer
}

// NewStorages opens the backend selected by cfg.DB.Driver, applies schema
// migrations for SQL backends and builds the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.DB.Driver {
	case config.DriverMemory:
		log.Info().Str("func", "NewStorages").Msg("using in-memory storage")
		return NewMemoryStorages(NewMemoryStore(log)), nil
	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return newSQLStorages(db, log)
	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return newSQLStorages(db, log)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.DB.Driver)
	}
}

// NewMemoryStorages exposes a single [MemoryStore] through every repository.
func NewMemoryStorages(memory *MemoryStore) *Storages {
	return &Storages{
		AuthorRepository:   memory,
		CardRepository:     memory,
		CategoryRepository: memory,
	}
}

func newSQLStorages(db *DB, log *logger.Logger) (*Storages, error) {
	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "newSQLStorages").Msg("error applying migrations")
		return nil, errors.Join(fmt.Errorf("error applying migrations: %w", err), db.Close())
	}

	return &Storages{
		AuthorRepository:   NewAuthorRepository(db, log),
		CardRepository:     NewCardRepository(db, log),
		CategoryRepository: NewCategoryRepository(db, log),
		closer:             db,
	}, nil
}

// Close releases the underlying database connection, if any.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
