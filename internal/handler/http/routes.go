package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Get("/api/auth/confirm", h.confirm)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/forgot-password", h.forgotPassword)
		r.Post("/api/auth/reset-password", h.resetPassword)
	})

	router.Get("/api/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
