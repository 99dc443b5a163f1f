// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-mini-blog/models"
)

const (
	authorTable   = "author"
	cardTable     = "card"
	categoryTable = "category"
)

var authorColumns = []string{"id", "username", "password"}

// cardColumns selects a card together with its denormalized author username
// and category name. Order must match scanCard.
var cardColumns = []string{
	"c.id",
	"c.name",
	"c.status",
	"c.content",
	"c.author_id",
	"c.category_id",
	"a.username",
	"cat.name",
}

// sortableCardColumns whitelists the fields a card listing may be sorted on.
var sortableCardColumns = map[string]string{
	"id":     "c.id",
	"name":   "c.name",
	"status": "c.status",
}

func selectCards(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(cardColumns...).
		From(cardTable + " c").
		Join(authorTable + " a ON a.id = c.author_id").
		LeftJoin(categoryTable + " cat ON cat.id = c.category_id")
}

func buildGetCardQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return selectCards(b).Where(sq.Eq{"c.id": id}).ToSql()
}

func buildListCardsQuery(b sq.StatementBuilderType, pageRequest models.PageRequest) (string, []any, error) {
	orderBy, err := cardOrderBy(pageRequest.Sort)
	if err != nil {
		return "", nil, err
	}

	return selectCards(b).
		OrderBy(orderBy...).
		Limit(uint64(pageRequest.Size)).
		Offset(uint64(pageRequest.Offset())).
		ToSql()
}

func buildCountCardsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").From(cardTable).ToSql()
}

// cardOrderBy renders ORDER BY terms. The id is always appended as a
// tie-breaker so pages are stable.
func cardOrderBy(orders []models.Order) ([]string, error) {
	terms := make([]string, 0, len(orders)+1)
	hasID := false

	for _, order := range orders {
		column, ok := sortableCardColumns[order.Field]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedSortField, order.Field)
		}
		if order.Field == "id" {
			hasID = true
		}

		direction := "ASC"
		if order.Desc {
			direction = "DESC"
		}
		terms = append(terms, column+" "+direction)
	}

	if !hasID {
		terms = append(terms, "c.id ASC")
	}

	return terms, nil
}

func buildInsertCardQuery(b sq.StatementBuilderType, card models.Card) (string, []any, error) {
	return b.Insert(cardTable).
		Columns("name", "status", "content", "author_id", "category_id").
		Values(card.Name, nullableStatus(card.Status), nullableString(card.Content), card.AuthorID, card.CategoryID).
		Suffix("RETURNING id").
		ToSql()
}

// buildUpsertCardQuery overwrites every mutable column of the card keyed by
// id, inserting the row when the id is unknown.
func buildUpsertCardQuery(b sq.StatementBuilderType, card models.Card) (string, []any, error) {
	return b.Insert(cardTable).
		Columns("id", "name", "status", "content", "author_id", "category_id").
		Values(card.ID, card.Name, nullableStatus(card.Status), nullableString(card.Content), card.AuthorID, card.CategoryID).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			content = EXCLUDED.content,
			author_id = EXCLUDED.author_id,
			category_id = EXCLUDED.category_id
		RETURNING id`).
		ToSql()
}

// syncCardSequenceQuery moves the card id sequence past the highest stored
// id so that later inserts do not collide with upserted ids.
const syncCardSequenceQuery = `SELECT setval(pg_get_serial_sequence('card', 'id'), GREATEST((SELECT MAX(id) FROM card), 1))`

func buildDeleteCardQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(cardTable).Where(sq.Eq{"id": id}).ToSql()
}

func buildInsertAuthorQuery(b sq.StatementBuilderType, author models.Author) (string, []any, error) {
	return b.Insert(authorTable).
		Columns("username", "password").
		Values(author.Username, author.Password).
		Suffix("RETURNING id").
		ToSql()
}

func buildGetAuthorByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(authorColumns...).From(authorTable).Where(sq.Eq{"id": id}).ToSql()
}

func buildFindAuthorByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(authorColumns...).From(authorTable).Where(sq.Eq{"username": username}).ToSql()
}

func buildUpdateAuthorQuery(b sq.StatementBuilderType, author models.Author) (string, []any, error) {
	return b.Update(authorTable).
		Set("username", author.Username).
		Set("password", author.Password).
		Where(sq.Eq{"id": author.ID}).
		ToSql()
}

func buildGetCategoryQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select("id", "name").From(categoryTable).Where(sq.Eq{"id": id}).ToSql()
}

// nullableStatus stores an unset status as NULL.
func nullableStatus(s models.Status) any {
	if s == models.StatusUnset {
		return nil
	}
	return string(s)
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
