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

// cardRepository is the SQL implementation of [CardRepository].
//
// Reads join the author and category tables so returned cards carry the
// author username and category name.
type cardRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCardRepository constructs a [CardRepository] on top of db.
func NewCardRepository(db *DB, logger *logger.Logger) CardRepository {
	logger.Debug().Msg("creating card repository")
	return &cardRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (models.Card, error) {
	var (
		card         models.Card
		status       sql.NullString
		content      sql.NullString
		categoryID   sql.NullInt64
		categoryName sql.NullString
	)

	err := row.Scan(
		&card.ID,
		&card.Name,
		&status,
		&content,
		&card.AuthorID,
		&categoryID,
		&card.AuthorUsername,
		&categoryName,
	)
	if err != nil {
		return models.Card{}, err
	}

	card.Status = models.Status(status.String)
	card.Content = content.String
	card.CategoryName = categoryName.String
	if categoryID.Valid {
		id := categoryID.Int64
		card.CategoryID = &id
	}

	return card, nil
}

// GetCard returns the card with the given id.
func (r *cardRepository) GetCard(ctx context.Context, id int64) (models.Card, error) {
	query, args, err := buildGetCardQuery(r.db.builder(), id)
	if err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	card, err := scanCard(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Card{}, ErrCardNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*cardRepository.GetCard").Int64("card_id", id).Msg("error querying card")
		return models.Card{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return card, nil
}

// CreateCard inserts card with a generated id and returns the stored row.
func (r *cardRepository) CreateCard(ctx context.Context, card models.Card) (models.Card, error) {
	query, args, err := buildInsertCardQuery(r.db.builder(), card)
	if err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.write(ctx, "*cardRepository.CreateCard", query, args)
}

// SaveCard upserts card by its id and returns the stored row. On backends
// with id sequences the sequence is moved past the upserted id.
func (r *cardRepository) SaveCard(ctx context.Context, card models.Card) (models.Card, error) {
	query, args, err := buildUpsertCardQuery(r.db.builder(), card)
	if err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	id, err := r.insert(ctx, "*cardRepository.SaveCard", query, args)
	if err != nil {
		return models.Card{}, err
	}

	if r.db.dialect.serialSequences {
		if _, err = r.db.ExecContext(ctx, syncCardSequenceQuery); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*cardRepository.SaveCard").Msg("error syncing card id sequence")
			return models.Card{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return r.GetCard(ctx, id)
}

// write runs an INSERT ... RETURNING id statement and reads the card back so
// that denormalized fields are filled.
func (r *cardRepository) write(ctx context.Context, fn, query string, args []any) (models.Card, error) {
	id, err := r.insert(ctx, fn, query, args)
	if err != nil {
		return models.Card{}, err
	}

	return r.GetCard(ctx, id)
}

func (r *cardRepository) insert(ctx context.Context, fn, query string, args []any) (int64, error) {
	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		switch r.db.classify(err) {
		case ForeignKeyViolation:
			return 0, ErrInvalidReference
		case NotNullViolation, CheckViolation:
			return 0, fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		default:
			logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error writing card")
			return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return id, nil
}

// DeleteCard removes the card with the given id. Missing ids are ignored.
func (r *cardRepository) DeleteCard(ctx context.Context, id int64) error {
	query, args, err := buildDeleteCardQuery(r.db.builder(), id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*cardRepository.DeleteCard").Int64("card_id", id).Msg("error deleting card")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListCards returns the requested page ordered by pageRequest.Sort (id when
// empty) and the total number of cards.
func (r *cardRepository) ListCards(ctx context.Context, pageRequest models.PageRequest) (models.Page[models.Card], error) {
	log := logger.FromContext(ctx)
	pageRequest = pageRequest.Normalize()
	b := r.db.builder()

	countQuery, countArgs, err := buildCountCardsQuery(b)
	if err != nil {
		return models.Page[models.Card]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	listQuery, listArgs, err := buildListCardsQuery(b, pageRequest)
	if err != nil {
		if errors.Is(err, ErrUnsupportedSortField) {
			return models.Page[models.Card]{}, err
		}
		return models.Page[models.Card]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*cardRepository.ListCards").Msg("error counting cards")
		return models.Page[models.Card]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.ListCards").Msg("error listing cards")
		return models.Page[models.Card]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cards := make([]models.Card, 0, pageRequest.Size)
	for rows.Next() {
		card, scanErr := scanCard(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*cardRepository.ListCards").Msg("failed to scan card row")
			return models.Page[models.Card]{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		cards = append(cards, card)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*cardRepository.ListCards").Msg("error occurred during rows iteration")
		return models.Page[models.Card]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return models.Page[models.Card]{
		Items: cards,
		Total: total,
		Page:  pageRequest.Page,
		Size:  pageRequest.Size,
	}, nil
}
