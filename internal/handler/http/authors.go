// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-mini-blog/internal/app"
	"github.com/MKhiriev/go-mini-blog/internal/logger"
	"github.com/MKhiriev/go-mini-blog/internal/utils"
	"github.com/MKhiriev/go-mini-blog/models"
	"github.com/go-chi/chi/v5"
)

// passwordChange is the body of PUT /api/authors/{username}/password.
type passwordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *Handler) registerAuthor(w http.ResponseWriter, r *http.Request) {
	var author models.Author
	if err := utils.ReadJSON(r, &author); err != nil {
		h.writeError(w, r, app.EntityAuthor, err)
		return
	}

	registered, err := h.services.AuthorService.Register(r.Context(), author)
	if err != nil {
		h.writeError(w, r, app.EntityAuthor, err)
		return
	}

	id := strconv.FormatInt(registered.ID, 10)
	w.Header().Set("Location", "/api/authors/"+id)
	h.alerts.created(w, app.EntityAuthor, id)
	if _, err = utils.WriteJSON(w, registered, http.StatusCreated); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.registerAuthor").Msg("error writing response")
	}
}

func (h *Handler) getAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, app.EntityAuthor, err)
		return
	}

	author, err := h.services.AuthorService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, app.EntityAuthor, err)
		return
	}

	if _, err = utils.WriteJSON(w, author, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getAuthor").Msg("error writing response")
	}
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var change passwordChange
	if err := utils.ReadJSON(r, &change); err != nil {
		h.writeError(w, r, app.EntityAuthor, err)
		return
	}

	username := chi.URLParam(r, "username")
	author, err := h.services.AuthorService.ChangePassword(r.Context(), username, change.CurrentPassword, change.NewPassword)
	if err != nil {
		h.writeError(w, r, app.EntityAuthor, err)
		return
	}

	h.alerts.updated(w, app.EntityAuthor, username)
	if _, err = utils.WriteJSON(w, author, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.changePassword").Msg("error writing response")
	}
}
