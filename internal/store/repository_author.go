// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-mini-blog/internal/logger"
	"github.com/MKhiriev/go-mini-blog/models"
)

// authorRepository is the SQL implementation of [AuthorRepository] backed
// by the "author" table.
type authorRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAuthorRepository constructs an [AuthorRepository] on top of db.
func NewAuthorRepository(db *DB, logger *logger.Logger) AuthorRepository {
	logger.Debug().Msg("creating author repository")
	return &authorRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAuthor inserts the author and returns it with the generated id.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - check or not-null violation → [ErrConstraintViolation].
//   - anything else → wrapped [ErrExecutingQuery].
func (r *authorRepository) CreateAuthor(ctx context.Context, author models.Author) (models.Author, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAuthorQuery(r.db.builder(), author)
	if err != nil {
		return models.Author{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&author.ID); err != nil {
		switch r.db.classify(err) {
		case UniqueViolation:
			log.Debug().Str("func", "*authorRepository.CreateAuthor").Str("username", author.Username).Msg("username already taken")
			return models.Author{}, ErrUsernameAlreadyExists
		case CheckViolation, NotNullViolation:
			return models.Author{}, fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		default:
			log.Err(err).Str("func", "*authorRepository.CreateAuthor").Msg("error inserting author")
			return models.Author{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return author, nil
}

// GetAuthorByID returns the author with the given id.
func (r *authorRepository) GetAuthorByID(ctx context.Context, id int64) (models.Author, error) {
	query, args, err := buildGetAuthorByIDQuery(r.db.builder(), id)
	if err != nil {
		return models.Author{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getOne(ctx, "*authorRepository.GetAuthorByID", query, args)
}

// FindAuthorByUsername returns the author owning username.
func (r *authorRepository) FindAuthorByUsername(ctx context.Context, username string) (models.Author, error) {
	query, args, err := buildFindAuthorByUsernameQuery(r.db.builder(), username)
	if err != nil {
		return models.Author{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getOne(ctx, "*authorRepository.FindAuthorByUsername", query, args)
}

// UpdateAuthor overwrites username and password of author.ID.
func (r *authorRepository) UpdateAuthor(ctx context.Context, author models.Author) (models.Author, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAuthorQuery(r.db.builder(), author)
	if err != nil {
		return models.Author{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		switch r.db.classify(err) {
		case UniqueViolation:
			return models.Author{}, ErrUsernameAlreadyExists
		case CheckViolation, NotNullViolation:
			return models.Author{}, fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		default:
			log.Err(err).Str("func", "*authorRepository.UpdateAuthor").Int64("author_id", author.ID).Msg("error updating author")
			return models.Author{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Author{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Author{}, ErrAuthorNotFound
	}

	return author, nil
}

func (r *authorRepository) getOne(ctx context.Context, fn, query string, args []any) (models.Author, error) {
	var author models.Author
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&author.ID, &author.Username, &author.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Author{}, ErrAuthorNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error querying author")
		return models.Author{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return author, nil
}
