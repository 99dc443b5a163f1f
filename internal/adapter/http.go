// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-mini-blog/internal/logger"
	"github.com/MKhiriev/go-mini-blog/internal/utils"
	"github.com/MKhiriev/go-mini-blog/models"
)

const totalCountHeader = "X-Total-Count"

type httpBlogClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPBlogClient returns a [BlogClient] for the server at address. A
// missing scheme defaults to http. A non-positive timeout selects the HTTP
// client default.
func NewHTTPBlogClient(address string, timeout time.Duration, logger *logger.Logger) (BlogClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpBlogClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBlogClient) CreateCard(ctx context.Context, card models.CardDTO) (models.CardDTO, error) {
	var created models.CardDTO

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(card).
		SetResult(&created).
		Post("/api/cards")
	if err != nil {
		return models.CardDTO{}, fmt.Errorf("create card request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CardDTO{}, err
	}

	return created, nil
}

func (h *httpBlogClient) UpdateCard(ctx context.Context, card models.CardDTO) (models.CardDTO, error) {
	var updated models.CardDTO

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(card).
		SetResult(&updated).
		Put("/api/cards")
	if err != nil {
		return models.CardDTO{}, fmt.Errorf("update card request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CardDTO{}, err
	}

	return updated, nil
}

func (h *httpBlogClient) GetCard(ctx context.Context, id int64) (models.CardDTO, error) {
	var card models.CardDTO

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&card).
		Get("/api/cards/{id}")
	if err != nil {
		return models.CardDTO{}, fmt.Errorf("get card request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CardDTO{}, err
	}

	return card, nil
}

func (h *httpBlogClient) ListCards(ctx context.Context, pageRequest models.PageRequest) (models.Page[models.CardDTO], error) {
	pageRequest = pageRequest.Normalize()

	query := url.Values{}
	query.Set("page", strconv.Itoa(pageRequest.Page))
	query.Set("size", strconv.Itoa(pageRequest.Size))
	for _, order := range pageRequest.Sort {
		direction := "asc"
		if order.Desc {
			direction = "desc"
		}
		query.Add("sort", order.Field+","+direction)
	}

	var items []models.CardDTO
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		SetResult(&items).
		Get("/api/cards")
	if err != nil {
		return models.Page[models.CardDTO]{}, fmt.Errorf("list cards request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Page[models.CardDTO]{}, err
	}

	total, err := strconv.ParseInt(resp.Header().Get(totalCountHeader), 10, 64)
	if err != nil {
		h.logger.Warn().Err(err).Str("func", "*httpBlogClient.ListCards").Msg("missing or malformed total count header")
		total = int64(len(items))
	}

	return models.Page[models.CardDTO]{
		Items: items,
		Total: total,
		Page:  pageRequest.Page,
		Size:  pageRequest.Size,
	}, nil
}

func (h *httpBlogClient) DeleteCard(ctx context.Context, id int64, username, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetQueryParam("authorUsername", username).
		SetQueryParam("password", password).
		Delete("/api/cards/{id}")
	if err != nil {
		return fmt.Errorf("delete card request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBlogClient) RegisterAuthor(ctx context.Context, author models.Author) (models.Author, error) {
	var registered models.Author

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(author).
		SetResult(&registered).
		Post("/api/authors")
	if err != nil {
		return models.Author{}, fmt.Errorf("register author request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Author{}, err
	}

	return registered, nil
}

func (h *httpBlogClient) GetAuthor(ctx context.Context, id int64) (models.Author, error) {
	var author models.Author

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&author).
		Get("/api/authors/{id}")
	if err != nil {
		return models.Author{}, fmt.Errorf("get author request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Author{}, err
	}

	return author, nil
}

func (h *httpBlogClient) ChangePassword(ctx context.Context, username, password, newPassword string) (models.Author, error) {
	var author models.Author

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("username", username).
		SetBody(map[string]string{
			"currentPassword": password,
			"newPassword":     newPassword,
		}).
		SetResult(&author).
		Put("/api/authors/{username}/password")
	if err != nil {
		return models.Author{}, fmt.Errorf("change password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Author{}, err
	}

	return author, nil
}

func (h *httpBlogClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}
