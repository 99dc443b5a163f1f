// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-mini-blog/internal/app"
	"github.com/MKhiriev/go-mini-blog/internal/logger"
	"github.com/MKhiriev/go-mini-blog/internal/service"
	"github.com/MKhiriev/go-mini-blog/internal/store"
	"github.com/MKhiriev/go-mini-blog/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:    http.StatusBadRequest,
	service.ErrAuthorization: http.StatusUnauthorized,
	service.ErrNotFound:      http.StatusNotFound,
	service.ErrConflict:      http.StatusConflict,

	ErrInvalidID:          http.StatusBadRequest,
	ErrInvalidPageRequest: http.StatusBadRequest,
	utils.ErrEmptyBody:    http.StatusBadRequest,
	utils.ErrInvalidJSON:  http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// errorMessages holds the body written for specific errors. Anything not
// listed gets the generic message of its status.
var errorMessages = []struct {
	target  error
	message string
}{
	{service.ErrCardNotFound, app.MsgCardNotFound},
	{service.ErrAuthorNotFound, app.MsgAuthorNotFound},
	{service.ErrUsernameTaken, app.MsgUsernameAlreadyExists},
	{service.ErrAuthorization, app.MsgInvalidCredential},
	{ErrInvalidID, app.MsgInvalidID},
	{ErrInvalidPageRequest, app.MsgInvalidPageRequest},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	if status == http.StatusInternalServerError {
		return app.MsgInternalServerError
	}
	return app.MsgInvalidDataProvided
}

// errorKey is the suffix of the X-<app>-error alert header.
func errorKey(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "validation"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusNotFound:
		return "notfound"
	case http.StatusConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// writeError logs err and responds with the status mapped from it and a
// generic text/plain message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, entity string, err error) {
	status := statusFromError(err)
	if errors.Is(err, service.ErrCardIDExists) {
		h.alerts.failure(w, entity, "idexists")
	} else {
		h.alerts.failure(w, entity, errorKey(status))
	}

	event := logger.FromRequest(r).Warn()
	if status == http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	http.Error(w, messageFromError(err, status), status)
}
