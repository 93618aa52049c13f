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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/emailconfirmation", h.confirmEmail)
		r.Post("/forgetpassword", h.forgetPassword)
		r.Post("/resetpassword", h.resetPassword)
	})

	// routes requiring a bearer session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/profil", h.getProfile)
		r.Put("/profil", h.updateProfile)
	})

	return router
}
