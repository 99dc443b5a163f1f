// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "math"

const (
	// DefaultPageSize is used when a request does not specify a size.
	DefaultPageSize = 20

	// MaxPageSize caps the number of items a single page may hold.
	MaxPageSize = 100
)

// Order describes sorting on a single column.
type Order struct {
	Field string
	Desc  bool
}

// PageRequest selects a zero-based page of a listing.
type PageRequest struct {
	Page int
	Size int
	Sort []Order
}

// Offset returns the number of rows to skip for the requested page. It
// saturates at math.MaxInt instead of overflowing.
func (p PageRequest) Offset() int {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}

	return p.Page * p.Size
}

// Normalize returns a copy of p with out-of-range values clamped.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}

	return p
}

// Page is one slice of a listing together with the total number of items
// available across all pages.
type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Size  int
}

// TotalPages returns the number of pages needed to hold Total items.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}

	return int((p.Total + int64(p.Size) - 1) / int64(p.Size))
}

// MapPage converts every item of a page while keeping its paging metadata.
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	items := make([]R, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, fn(item))
	}

	return Page[R]{
		Items: items,
		Total: p.Total,
		Page:  p.Page,
		Size:  p.Size,
	}
}
