package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Every method on every path is an upload: the
// path only shows up in the request log.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(h.withServerVersion)

	router.HandleFunc("/", h.upload)
	router.HandleFunc("/*", h.upload)

	return router
}
