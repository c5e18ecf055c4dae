package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecovery)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getVersion)

		r.Get("/accounts", h.listAccounts)
		r.Post("/accounts/{accountID}/refresh", h.refreshAccount)

		r.Get("/characters", h.listCharacters)
		r.Get("/characters/{uid}/notes", h.getNotes)
		r.Post("/characters/{uid}/notes/refresh", h.refreshNotes)

		r.Get("/selection", h.getSelection)
		r.Put("/selection/{uid}", h.selectCharacter)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(notFound)

	return router
}
