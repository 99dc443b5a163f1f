// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/go-mini-blog/internal/config"
	"github.com/MKhiriev/go-mini-blog/internal/logger"
	"github.com/MKhiriev/go-mini-blog/internal/service"
	"github.com/MKhiriev/go-mini-blog/internal/store"
	"github.com/MKhiriev/go-mini-blog/internal/utils"
	"github.com/MKhiriev/go-mini-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer serves the full router over an in-memory store holding a
// single "news" category.
func newTestServer(t *testing.T) *utils.HTTPClient {
	t.Helper()

	cfg := config.StructuredConfig{
		App:    config.App{Name: "miniblogApp", Version: "0.1.0"},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}
	memory := store.NewMemoryStore(logger.Nop(), models.Category{ID: 1, Name: "news"})

	services, err := service.NewServices(store.NewMemoryStorages(memory), cfg, logger.Nop())
	require.NoError(t, err)

	server := httptest.NewServer(NewHandler(services, cfg, logger.Nop()).Init())
	t.Cleanup(server.Close)

	return utils.NewHTTPClient(server.URL, 5*time.Second)
}

func TestRouter_CardLifecycle(t *testing.T) {
	client := newTestServer(t)

	// register alice with a known password
	var alice models.Author
	resp, err := client.R().
		SetBody(models.Author{Username: "alice", Password: "alice-pass"}).
		SetResult(&alice).
		Post("/api/authors")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())
	assert.Empty(t, alice.Password)

	resp, err = client.R().
		SetBody(models.Author{Username: "alice", Password: "other-pass"}).
		Post("/api/authors")
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode())

	// create by username, resolving the existing author
	categoryID := int64(1)
	var created models.CardDTO
	resp, err = client.R().
		SetBody(models.CardDTO{Name: "first", Status: models.StatusDraft, AuthorUsername: "alice", CategoryID: &categoryID}).
		SetResult(&created).
		Post("/api/cards")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())
	require.NotNil(t, created.ID)
	assert.Equal(t, alice.ID, *created.AuthorID)
	assert.Equal(t, "news", created.CategoryName)
	assert.Equal(t, "miniblogApp.miniBlogCard.created", resp.Header().Get("X-miniblogApp-alert"))

	// a second card provisions a new author on the fly
	resp, err = client.R().
		SetBody(models.CardDTO{Name: "second", AuthorUsername: "carol"}).
		Post("/api/cards")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	// update with a wrong password is rejected and leaves the card as is
	edit := created
	edit.Name = "edited"
	edit.AuthorPassword = "wrong-pass"
	resp, err = client.R().SetBody(edit).Put("/api/cards")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	var fetched models.CardDTO
	_, err = client.R().SetResult(&fetched).Get("/api/cards/" + itoa(*created.ID))
	require.NoError(t, err)
	assert.Equal(t, "first", fetched.Name)

	edit.AuthorPassword = "alice-pass"
	var updated models.CardDTO
	resp, err = client.R().SetBody(edit).SetResult(&updated).Put("/api/cards")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "edited", updated.Name)
	assert.Empty(t, updated.AuthorPassword)

	// list
	var listed []models.CardDTO
	resp, err = client.R().
		SetQueryParams(map[string]string{"size": "1", "sort": "id,desc"}).
		SetResult(&listed).
		Get("/api/cards")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "2", resp.Header().Get(totalCountHeader))
	assert.Contains(t, resp.Header().Get(linkHeader), `rel="next"`)
	require.Len(t, listed, 1)
	assert.Equal(t, "second", listed[0].Name)

	// delete
	resp, err = client.R().
		SetQueryParams(map[string]string{"authorUsername": "alice"}).
		Delete("/api/cards/" + itoa(*created.ID))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())

	resp, err = client.R().
		SetQueryParams(map[string]string{"authorUsername": "alice", "password": "alice-pass"}).
		Delete("/api/cards/" + itoa(*created.ID))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())

	resp, err = client.R().Get("/api/cards/" + itoa(*created.ID))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}

func TestRouter_ChangePassword(t *testing.T) {
	client := newTestServer(t)

	resp, err := client.R().
		SetBody(models.Author{Username: "dave", Password: "first-pass"}).
		Post("/api/authors")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	resp, err = client.R().
		SetBody(passwordChange{CurrentPassword: "first-pass", NewPassword: "second-pass"}).
		Put("/api/authors/dave/password")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	resp, err = client.R().
		SetBody(passwordChange{CurrentPassword: "first-pass", NewPassword: "third-pass"}).
		Put("/api/authors/dave/password")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
}

func TestRouter_Version(t *testing.T) {
	client := newTestServer(t)

	resp, err := client.R().Get("/api/version")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "0.1.0", resp.String())
	assert.NotEmpty(t, resp.Header().Get(traceIDHeader))
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
