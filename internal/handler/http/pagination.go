// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-mini-blog/models"
)

const (
	totalCountHeader = "X-Total-Count"
	linkHeader       = "Link"
)

var ErrInvalidPageRequest = errors.New("invalid page request")

// parsePageRequest reads page, size and any number of sort=field[,asc|desc]
// query parameters.
func parsePageRequest(query url.Values) (models.PageRequest, error) {
	var pageRequest models.PageRequest

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return models.PageRequest{}, fmt.Errorf("%w: page %q", ErrInvalidPageRequest, raw)
		}
		pageRequest.Page = page
	}

	if raw := query.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			return models.PageRequest{}, fmt.Errorf("%w: size %q", ErrInvalidPageRequest, raw)
		}
		pageRequest.Size = size
	}

	for _, raw := range query["sort"] {
		field, direction, _ := strings.Cut(raw, ",")
		field = strings.TrimSpace(field)
		if field == "" {
			return models.PageRequest{}, fmt.Errorf("%w: sort %q", ErrInvalidPageRequest, raw)
		}

		order := models.Order{Field: field}
		switch strings.ToLower(strings.TrimSpace(direction)) {
		case "", "asc":
		case "desc":
			order.Desc = true
		default:
			return models.PageRequest{}, fmt.Errorf("%w: sort direction %q", ErrInvalidPageRequest, direction)
		}
		pageRequest.Sort = append(pageRequest.Sort, order)
	}

	pageRequest = pageRequest.Normalize()
	if pageRequest.Page > math.MaxInt/pageRequest.Size {
		return models.PageRequest{}, fmt.Errorf("%w: page %d is out of range", ErrInvalidPageRequest, pageRequest.Page)
	}

	return pageRequest, nil
}

// writePaginationHeaders sets X-Total-Count and an RFC 5988 Link header
// with next, prev, last and first relations.
func writePaginationHeaders[T any](w http.ResponseWriter, r *http.Request, page models.Page[T]) {
	w.Header().Set(totalCountHeader, strconv.FormatInt(page.Total, 10))

	lastPage := max(page.TotalPages()-1, 0)
	links := make([]string, 0, 4)
	if page.Page < lastPage {
		links = append(links, pageLink(r.URL, page.Page+1, page.Size, "next"))
	}
	if page.Page > 0 {
		links = append(links, pageLink(r.URL, page.Page-1, page.Size, "prev"))
	}
	links = append(links,
		pageLink(r.URL, lastPage, page.Size, "last"),
		pageLink(r.URL, 0, page.Size, "first"),
	)

	w.Header().Set(linkHeader, strings.Join(links, ","))
}

func pageLink(base *url.URL, page, size int, rel string) string {
	query := base.Query()
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	u := url.URL{Path: base.Path, RawQuery: query.Encode()}
	return fmt.Sprintf("<%s>; rel=%q", u.String(), rel)
}
