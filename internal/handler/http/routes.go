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
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/users", h.register)
		r.Post("/users/login", h.login)
	})

	// routes behind the token guard
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/me", h.me)
		r.Delete("/users/me/token", h.logout)

		r.Post("/todos", h.createTodo)
		r.Get("/todos", h.listTodos)
		r.Get("/todos/{id}", h.getTodo)
		r.Patch("/todos/{id}", h.updateTodo)
		r.Delete("/todos/{id}", h.deleteTodo)
	})

	router.MethodNotAllowed(hideMethodNotAllowed)

	return router
}
