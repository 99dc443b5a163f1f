// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mini-blog/internal/config"
	"github.com/MKhiriev/go-mini-blog/internal/logger"
	"github.com/MKhiriev/go-mini-blog/internal/mock"
	"github.com/MKhiriev/go-mini-blog/internal/service"
	"github.com/MKhiriev/go-mini-blog/internal/store"
	"github.com/MKhiriev/go-mini-blog/models"
)

const newsCategoryID = int64(1)

func ptr[T any](v T) *T { return &v }

// newMemoryServices wires the real services over an empty in-memory store
// seeded with a single "news" category.
func newMemoryServices(t *testing.T) (*service.Services, *store.MemoryStore) {
	t.Helper()

	memory := store.NewMemoryStore(logger.Nop(), models.Category{ID: newsCategoryID, Name: "news"})
	cfg := config.StructuredConfig{App: config.App{Name: "miniblogApp", Version: "test"}}

	services, err := service.NewServices(store.NewMemoryStorages(memory), cfg, logger.Nop())
	require.NoError(t, err)

	return services, memory
}

func authorCount(t *testing.T, memory *store.MemoryStore) int {
	t.Helper()

	count := 0
	for id := int64(1); ; id++ {
		if _, err := memory.GetAuthorByID(context.Background(), id); err != nil {
			return count
		}
		count++
	}
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestCardService_AliceScenario(t *testing.T) {
	services, memory := newMemoryServices(t)
	cards := services.CardService
	ctx := context.Background()

	created, err := cards.Create(ctx, models.CardDTO{Name: "hello", AuthorUsername: "alice"})
	require.NoError(t, err)
	require.NotNil(t, created.ID)
	assert.Equal(t, int64(1), *created.ID)

	alice, err := memory.FindAuthorByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, created.AuthorID)
	assert.Equal(t, alice.ID, *created.AuthorID)
	assert.GreaterOrEqual(t, len(alice.Password), 8)
	assert.Empty(t, created.AuthorPassword, "password is never echoed back")

	update := created
	update.AuthorUsername = "alice"
	update.AuthorPassword = alice.Password + "x"
	update.Content = "edited"

	_, err = cards.Update(ctx, update)
	assert.ErrorIs(t, err, service.ErrAuthorization)

	update.AuthorPassword = alice.Password
	updated, err := cards.Update(ctx, update)
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	got, err := cards.Get(ctx, *created.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Content)
}

func TestCardService_Create_ProvisionsExactlyOneAuthor(t *testing.T) {
	services, memory := newMemoryServices(t)
	ctx := context.Background()

	created, err := services.CardService.Create(ctx, models.CardDTO{Name: "first", AuthorUsername: "bob"})
	require.NoError(t, err)
	assert.Equal(t, 1, authorCount(t, memory))

	bob, err := memory.FindAuthorByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, *created.AuthorID)
}

func TestCardService_Create_ExistingAuthorAddsNone(t *testing.T) {
	services, memory := newMemoryServices(t)
	ctx := context.Background()

	_, err := services.AuthorService.Register(ctx, models.Author{Username: "carol", Password: "secret123"})
	require.NoError(t, err)

	for i := range 3 {
		_, err = services.CardService.Create(ctx, models.CardDTO{Name: fmt.Sprintf("card %d", i), AuthorUsername: "carol"})
		require.NoError(t, err)
	}

	assert.Equal(t, 1, authorCount(t, memory))
}

func TestCardService_Create_RoundTrip(t *testing.T) {
	services, _ := newMemoryServices(t)
	ctx := context.Background()

	input := models.CardDTO{
		Name:           "Round trip",
		Status:         models.StatusPublished,
		Content:        "body",
		AuthorUsername: "dave",
		CategoryID:     ptr(newsCategoryID),
	}

	created, err := services.CardService.Create(ctx, input)
	require.NoError(t, err)

	got, err := services.CardService.Get(ctx, *created.ID)
	require.NoError(t, err)

	assert.Equal(t, created, got)
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Status, got.Status)
	assert.Equal(t, input.Content, got.Content)
	assert.Equal(t, input.AuthorUsername, got.AuthorUsername)
	assert.Equal(t, input.CategoryID, got.CategoryID)
	assert.Equal(t, "news", got.CategoryName)
}

func TestCardService_Create_Rejections(t *testing.T) {
	services, memory := newMemoryServices(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   models.CardDTO
		wantErr error
	}{
		{"id already set", models.CardDTO{ID: ptr(int64(5)), Name: "x", AuthorUsername: "eve"}, service.ErrCardIDExists},
		{"no author", models.CardDTO{Name: "x"}, service.ErrMissingAuthor},
		{"blank author username", models.CardDTO{Name: "x", AuthorUsername: "  "}, service.ErrMissingAuthor},
		{"missing name", models.CardDTO{AuthorUsername: "eve"}, service.ErrValidation},
		{"bad status", models.CardDTO{Name: "x", Status: "LOST", AuthorUsername: "eve"}, service.ErrValidation},
		{"unknown category", models.CardDTO{Name: "x", AuthorUsername: "eve", CategoryID: ptr(int64(99))}, service.ErrInvalidReference},
		{"unknown author id", models.CardDTO{Name: "x", AuthorID: ptr(int64(99))}, service.ErrInvalidReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.CardService.Create(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, service.ErrValidation)
		})
	}

	page, err := memory.ListCards(ctx, models.PageRequest{})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.Zero(t, authorCount(t, memory), "rejected creates provision no author")
}

func TestCardService_Create_ConcurrentSameUsername(t *testing.T) {
	services, memory := newMemoryServices(t)
	ctx := context.Background()

	const n = 32
	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := services.CardService.Create(ctx, models.CardDTO{Name: fmt.Sprintf("card %d", i), AuthorUsername: "frank"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	frank, err := memory.FindAuthorByUsername(ctx, "frank")
	require.NoError(t, err)
	assert.Equal(t, 1, authorCount(t, memory))

	page, err := memory.ListCards(ctx, models.PageRequest{Size: models.MaxPageSize})
	require.NoError(t, err)
	require.Equal(t, int64(n), page.Total)
	for _, card := range page.Items {
		assert.Equal(t, frank.ID, card.AuthorID)
	}
}

// ─────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────

func TestCardService_Update_Rejections(t *testing.T) {
	services, memory := newMemoryServices(t)
	ctx := context.Background()

	_, err := services.AuthorService.Register(ctx, models.Author{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	created, err := services.CardService.Create(ctx, models.CardDTO{Name: "original", AuthorUsername: "alice"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		modify  func(*models.CardDTO)
		wantErr error
	}{
		{"missing id", func(c *models.CardDTO) { c.ID = nil }, service.ErrCardIDMissing},
		{"zero id", func(c *models.CardDTO) { c.ID = new(int64) }, service.ErrCardIDMissing},
		{"negative id", func(c *models.CardDTO) { id := int64(-1); c.ID = &id }, service.ErrCardIDMissing},
		{"missing author", func(c *models.CardDTO) { c.AuthorID = nil; c.AuthorUsername = "" }, service.ErrMissingAuthor},
		{"missing password", func(c *models.CardDTO) { c.AuthorPassword = "" }, service.ErrMissingCredentials},
		{"author id without username", func(c *models.CardDTO) { c.AuthorUsername = "" }, service.ErrMissingCredentials},
		{"wrong password", func(c *models.CardDTO) { c.AuthorPassword = "secret124" }, service.ErrInvalidCredentials},
		{"unknown user", func(c *models.CardDTO) { c.AuthorUsername = "mallory" }, service.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := created
			input.Name = "changed"
			input.AuthorPassword = "secret123"
			tt.modify(&input)

			_, err := services.CardService.Update(ctx, input)
			assert.ErrorIs(t, err, tt.wantErr)

			stored, err := memory.GetCard(ctx, *created.ID)
			require.NoError(t, err)
			assert.Equal(t, "original", stored.Name, "store must be unchanged")
		})
	}
}

func TestCardService_Update_AttributesToVerifiedAuthor(t *testing.T) {
	services, _ := newMemoryServices(t)
	ctx := context.Background()

	alice, err := services.AuthorService.Register(ctx, models.Author{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	updated, err := services.CardService.Update(ctx, models.CardDTO{
		ID:             ptr(int64(40)),
		Name:           "upserted",
		AuthorUsername: "alice",
		AuthorPassword: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(40), *updated.ID, "unknown id is created by the upsert")
	assert.Equal(t, alice.ID, *updated.AuthorID)
}

func TestCardService_Update_AuthorizesBeforeWriting(t *testing.T) {
	ctrl := gomock.NewController(t)
	cards := mock.NewMockCardRepository(ctrl)
	categories := mock.NewMockCategoryRepository(ctrl)
	resolver := mock.NewMockAuthorResolver(ctrl)
	guard := mock.NewMockCredentialGuard(ctrl)

	svc := service.NewCardService(cards, categories, resolver, guard, logger.Nop())
	ctx := context.Background()

	guard.EXPECT().Verify(ctx, "alice", "bad-password").Return(false, nil)
	cards.EXPECT().SaveCard(gomock.Any(), gomock.Any()).Times(0)
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Update(ctx, models.CardDTO{
		ID:             ptr(int64(1)),
		Name:           "x",
		AuthorUsername: "alice",
		AuthorPassword: "bad-password",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// Get / List
// ─────────────────────────────────────────────

func TestCardService_Get_NotFound(t *testing.T) {
	services, _ := newMemoryServices(t)

	_, err := services.CardService.Get(context.Background(), 404)

	assert.ErrorIs(t, err, service.ErrCardNotFound)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCardService_List(t *testing.T) {
	services, _ := newMemoryServices(t)
	ctx := context.Background()

	for _, name := range []string{"b", "c", "a"} {
		_, err := services.CardService.Create(ctx, models.CardDTO{Name: name, AuthorUsername: "gina"})
		require.NoError(t, err)
	}

	page, err := services.CardService.List(ctx, models.PageRequest{
		Size: 2,
		Sort: []models.Order{{Field: "name"}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.TotalPages())
	require.Len(t, page.Items, 2)
	assert.Equal(t, "a", page.Items[0].Name)
	assert.Equal(t, "gina", page.Items[0].AuthorUsername)

	_, err = services.CardService.List(ctx, models.PageRequest{Sort: []models.Order{{Field: "password"}}})
	assert.ErrorIs(t, err, service.ErrInvalidSort)
	assert.ErrorIs(t, err, service.ErrValidation)
}

// ─────────────────────────────────────────────
// Delete
// ─────────────────────────────────────────────

func TestCardService_Delete(t *testing.T) {
	services, memory := newMemoryServices(t)
	ctx := context.Background()

	_, err := services.AuthorService.Register(ctx, models.Author{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	created, err := services.CardService.Create(ctx, models.CardDTO{Name: "doomed", AuthorUsername: "alice"})
	require.NoError(t, err)

	err = services.CardService.Delete(ctx, *created.ID, "alice", "wrong-pass")
	assert.ErrorIs(t, err, service.ErrAuthorization)
	_, err = memory.GetCard(ctx, *created.ID)
	require.NoError(t, err, "failed authorization keeps the card")

	require.NoError(t, services.CardService.Delete(ctx, *created.ID, "alice", "secret123"))
	_, err = memory.GetCard(ctx, *created.ID)
	assert.ErrorIs(t, err, store.ErrCardNotFound)

	assert.NoError(t, services.CardService.Delete(ctx, *created.ID, "alice", "secret123"), "deleting twice is a no-op")
}

func TestCardService_Delete_BlankCredentials(t *testing.T) {
	services, _ := newMemoryServices(t)
	ctx := context.Background()

	created, err := services.CardService.Create(ctx, models.CardDTO{Name: "kept", AuthorUsername: "alice"})
	require.NoError(t, err)

	for _, id := range []int64{*created.ID, 12345} {
		for _, creds := range [][2]string{{"alice", ""}, {"alice", "  "}, {"", "secret123"}} {
			err = services.CardService.Delete(ctx, id, creds[0], creds[1])
			assert.ErrorIs(t, err, service.ErrMissingCredentials)
			assert.ErrorIs(t, err, service.ErrValidation)
		}
	}
}
