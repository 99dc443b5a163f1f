// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-mini-blog/internal/app"
	"github.com/MKhiriev/go-mini-blog/internal/logger"
	"github.com/MKhiriev/go-mini-blog/internal/utils"
	"github.com/MKhiriev/go-mini-blog/models"
	"github.com/go-chi/chi/v5"
)

var ErrInvalidID = errors.New("invalid id")

func (h *Handler) createCard(w http.ResponseWriter, r *http.Request) {
	var card models.CardDTO
	if err := utils.ReadJSON(r, &card); err != nil {
		h.writeError(w, r, app.EntityCard, err)
		return
	}

	created, err := h.services.CardService.Create(r.Context(), card)
	if err != nil {
		h.writeError(w, r, app.EntityCard, err)
		return
	}

	id := strconv.FormatInt(*created.ID, 10)
	w.Header().Set("Location", "/api/cards/"+id)
	h.alerts.created(w, app.EntityCard, id)
	if _, err = utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createCard").Msg("error writing response")
	}
}

func (h *Handler) updateCard(w http.ResponseWriter, r *http.Request) {
	var card models.CardDTO
	if err := utils.ReadJSON(r, &card); err != nil {
		h.writeError(w, r, app.EntityCard, err)
		return
	}

	updated, err := h.services.CardService.Update(r.Context(), card)
	if err != nil {
		h.writeError(w, r, app.EntityCard, err)
		return
	}

	h.alerts.updated(w, app.EntityCard, strconv.FormatInt(*updated.ID, 10))
	if _, err = utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateCard").Msg("error writing response")
	}
}

func (h *Handler) listCards(w http.ResponseWriter, r *http.Request) {
	pageRequest, err := parsePageRequest(r.URL.Query())
	if err != nil {
		h.writeError(w, r, app.EntityCard, err)
		return
	}

	page, err := h.services.CardService.List(r.Context(), pageRequest)
	if err != nil {
		h.writeError(w, r, app.EntityCard, err)
		return
	}

	writePaginationHeaders(w, r, page)
	if _, err = utils.WriteJSON(w, page.Items, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listCards").Msg("error writing response")
	}
}

func (h *Handler) getCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, app.EntityCard, err)
		return
	}

	card, err := h.services.CardService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, app.EntityCard, err)
		return
	}

	if _, err = utils.WriteJSON(w, card, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getCard").Msg("error writing response")
	}
}

// deleteCard reads the author credentials from the authorUsername and
// password query parameters.
func (h *Handler) deleteCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, app.EntityCard, err)
		return
	}

	query := r.URL.Query()
	err = h.services.CardService.Delete(r.Context(), id, query.Get("authorUsername"), query.Get("password"))
	if err != nil {
		h.writeError(w, r, app.EntityCard, err)
		return
	}

	h.alerts.deleted(w, app.EntityCard, strconv.FormatInt(id, 10))
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}
