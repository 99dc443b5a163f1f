// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultHTTPClientTimeout = 15 * time.Second

// HTTPClient embeds *resty.Client so every resty method is available
// directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 0)
//	resp, err := client.R().Get("/api/cards")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client targeting baseURL. A
// non-positive timeout selects the 15s default.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultHTTPClientTimeout
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
