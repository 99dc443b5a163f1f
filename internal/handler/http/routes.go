// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	if len(h.server.AllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.server.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", traceIDHeader},
			ExposedHeaders:   h.exposedHeaders(),
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	router.Post("/api/cards", h.createCard)
	router.Put("/api/cards", h.updateCard)
	router.Get("/api/cards", h.listCards)
	router.Get("/api/cards/{id}", h.getCard)
	router.Delete("/api/cards/{id}", h.deleteCard)

	router.Post("/api/authors", h.registerAuthor)
	router.Get("/api/authors/{id}", h.getAuthor)
	router.Put("/api/authors/{username}/password", h.changePassword)

	router.Get("/api/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) exposedHeaders() []string {
	return []string{
		totalCountHeader,
		linkHeader,
		"Location",
		traceIDHeader,
		h.alerts.alertHeader(),
		h.alerts.paramsHeader(),
		h.alerts.errorHeader(),
	}
}
