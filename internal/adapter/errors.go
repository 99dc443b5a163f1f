// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors for non-2xx server responses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("invalid credential")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrEmptyAddress is returned by NewHTTPBlogClient for a blank address.
	ErrEmptyAddress = errors.New("empty address")
)

// ResponseError is a non-2xx reply of the blog server. It unwraps to one of
// the sentinels above when the status has one.
type ResponseError struct {
	StatusCode int

	// Key is the error.<name> value of the X-<app>-error header, e.g.
	// error.idnotfound. Empty when the server sent no alert headers.
	Key string

	// Entity is the X-<app>-params value naming the failed entity.
	Entity string

	Message string

	kind error
}

func (e *ResponseError) Error() string {
	msg := fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	if e.kind != nil {
		msg = fmt.Sprintf("%s: %s", e.kind, e.Message)
	}
	if e.Key != "" {
		msg += " (" + e.Key + ")"
	}

	return msg
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}
