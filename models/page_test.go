// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   PageRequest
		want PageRequest
	}{
		{name: "zero value", in: PageRequest{}, want: PageRequest{Size: DefaultPageSize}},
		{name: "negative page", in: PageRequest{Page: -3, Size: 5}, want: PageRequest{Page: 0, Size: 5}},
		{name: "oversized", in: PageRequest{Page: 2, Size: 500}, want: PageRequest{Page: 2, Size: MaxPageSize}},
		{name: "already valid", in: PageRequest{Page: 1, Size: 10}, want: PageRequest{Page: 1, Size: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 0, Size: 20}.Offset())
	assert.Equal(t, 60, PageRequest{Page: 3, Size: 20}.Offset())
	assert.Equal(t, 0, PageRequest{Page: 3, Size: 0}.Offset())
}

func TestPageRequest_OffsetSaturates(t *testing.T) {
	assert.Equal(t, math.MaxInt, PageRequest{Page: math.MaxInt / 100, Size: 101}.Offset())
	assert.Equal(t, math.MaxInt, PageRequest{Page: 92233720368547759, Size: 100}.Offset())
	assert.Equal(t, math.MaxInt/100*100, PageRequest{Page: math.MaxInt / 100, Size: 100}.Offset())
}

func TestPage_TotalPages(t *testing.T) {
	assert.Equal(t, 0, Page[int]{Total: 0, Size: 20}.TotalPages())
	assert.Equal(t, 1, Page[int]{Total: 20, Size: 20}.TotalPages())
	assert.Equal(t, 2, Page[int]{Total: 21, Size: 20}.TotalPages())
	assert.Equal(t, 0, Page[int]{Total: 5, Size: 0}.TotalPages())
}

func TestMapPage(t *testing.T) {
	in := Page[int]{Items: []int{1, 2, 3}, Total: 13, Page: 4, Size: 3}

	got := MapPage(in, strconv.Itoa)

	assert.Equal(t, []string{"1", "2", "3"}, got.Items)
	assert.Equal(t, int64(13), got.Total)
	assert.Equal(t, 4, got.Page)
	assert.Equal(t, 3, got.Size)
}
