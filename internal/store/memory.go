// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-mini-blog/internal/logger"
	"github.com/MKhiriev/go-mini-blog/models"
)

// MemoryStore keeps authors, cards and categories in process memory.
// It implements [AuthorRepository], [CardRepository] and
// [CategoryRepository] with the same uniqueness and reference rules as the
// SQL schema. Data is lost on restart.
type MemoryStore struct {
	mu sync.RWMutex

	authors    map[int64]models.Author
	usernames  map[string]int64
	cards      map[int64]models.Card
	categories map[int64]models.Category

	nextAuthorID int64
	nextCardID   int64

	logger *logger.Logger
}

// NewMemoryStore returns an empty store seeded with the given categories.
func NewMemoryStore(logger *logger.Logger, categories ...models.Category) *MemoryStore {
	s := &MemoryStore{
		authors:    make(map[int64]models.Author),
		usernames:  make(map[string]int64),
		cards:      make(map[int64]models.Card),
		categories: make(map[int64]models.Category, len(categories)),
		logger:     logger,
	}
	for _, category := range categories {
		s.categories[category.ID] = category
	}

	return s
}

func (s *MemoryStore) GetAuthorByID(_ context.Context, id int64) (models.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	author, ok := s.authors[id]
	if !ok {
		return models.Author{}, ErrAuthorNotFound
	}
	return author, nil
}

func (s *MemoryStore) FindAuthorByUsername(_ context.Context, username string) (models.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return models.Author{}, ErrAuthorNotFound
	}
	return s.authors[id], nil
}

func (s *MemoryStore) CreateAuthor(_ context.Context, author models.Author) (models.Author, error) {
	if err := checkAuthor(author); err != nil {
		return models.Author{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usernames[author.Username]; taken {
		return models.Author{}, ErrUsernameAlreadyExists
	}

	s.nextAuthorID++
	author.ID = s.nextAuthorID
	s.authors[author.ID] = author
	s.usernames[author.Username] = author.ID

	return author, nil
}

func (s *MemoryStore) UpdateAuthor(_ context.Context, author models.Author) (models.Author, error) {
	if err := checkAuthor(author); err != nil {
		return models.Author{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.authors[author.ID]
	if !ok {
		return models.Author{}, ErrAuthorNotFound
	}
	if owner, taken := s.usernames[author.Username]; taken && owner != author.ID {
		return models.Author{}, ErrUsernameAlreadyExists
	}

	delete(s.usernames, current.Username)
	s.usernames[author.Username] = author.ID
	s.authors[author.ID] = author

	return author, nil
}

func (s *MemoryStore) GetCard(_ context.Context, id int64) (models.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	card, ok := s.cards[id]
	if !ok {
		return models.Card{}, ErrCardNotFound
	}
	return s.denormalize(card), nil
}

func (s *MemoryStore) CreateCard(_ context.Context, card models.Card) (models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkReferences(card); err != nil {
		return models.Card{}, err
	}

	s.nextCardID++
	card.ID = s.nextCardID
	return s.put(card), nil
}

func (s *MemoryStore) SaveCard(_ context.Context, card models.Card) (models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkReferences(card); err != nil {
		return models.Card{}, err
	}

	if card.ID > s.nextCardID {
		s.nextCardID = card.ID
	}
	return s.put(card), nil
}

func (s *MemoryStore) DeleteCard(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.cards, id)
	return nil
}

func (s *MemoryStore) ListCards(_ context.Context, pageRequest models.PageRequest) (models.Page[models.Card], error) {
	pageRequest = pageRequest.Normalize()
	compare, err := cardComparator(pageRequest.Sort)
	if err != nil {
		return models.Page[models.Card]{}, err
	}

	s.mu.RLock()
	all := make([]models.Card, 0, len(s.cards))
	for _, card := range s.cards {
		all = append(all, s.denormalize(card))
	}
	s.mu.RUnlock()

	slices.SortFunc(all, compare)

	from := min(pageRequest.Offset(), len(all))
	to := min(from+pageRequest.Size, len(all))

	return models.Page[models.Card]{
		Items: all[from:to],
		Total: int64(len(all)),
		Page:  pageRequest.Page,
		Size:  pageRequest.Size,
	}, nil
}

func (s *MemoryStore) GetCategory(_ context.Context, id int64) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[id]
	if !ok {
		return models.Category{}, ErrCategoryNotFound
	}
	return category, nil
}

// put stores card without its read-only fields and returns the
// denormalized copy. Callers hold the write lock.
func (s *MemoryStore) put(card models.Card) models.Card {
	stored := s.denormalize(card)
	stored.AuthorUsername = ""
	stored.CategoryName = ""
	s.cards[card.ID] = stored

	return s.denormalize(stored)
}

func (s *MemoryStore) denormalize(card models.Card) models.Card {
	card.AuthorUsername = s.authors[card.AuthorID].Username
	if card.CategoryID != nil {
		id := *card.CategoryID
		card.CategoryID = &id
		card.CategoryName = s.categories[id].Name
	}
	return card
}

func (s *MemoryStore) checkReferences(card models.Card) error {
	if card.Name == "" {
		return fmt.Errorf("%w: card name is required", ErrConstraintViolation)
	}
	if _, ok := s.authors[card.AuthorID]; !ok {
		return ErrInvalidReference
	}
	if card.CategoryID != nil {
		if _, ok := s.categories[*card.CategoryID]; !ok {
			return ErrInvalidReference
		}
	}
	return nil
}

func checkAuthor(author models.Author) error {
	if author.Username == "" {
		return fmt.Errorf("%w: username is required", ErrConstraintViolation)
	}
	if len(author.Password) < 8 {
		return fmt.Errorf("%w: password is too short", ErrConstraintViolation)
	}
	return nil
}

func cardComparator(orders []models.Order) (func(a, b models.Card) int, error) {
	for _, order := range orders {
		if _, ok := sortableCardColumns[order.Field]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedSortField, order.Field)
		}
	}

	return func(a, b models.Card) int {
		for _, order := range orders {
			var c int
			switch order.Field {
			case "id":
				c = cmp.Compare(a.ID, b.ID)
			case "name":
				c = cmp.Compare(a.Name, b.Name)
			case "status":
				c = cmp.Compare(a.Status, b.Status)
			}
			if order.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return cmp.Compare(a.ID, b.ID)
	}, nil
}
