package wire

import (
	"sendit/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// idPattern keeps non-numeric ids from reaching the handlers
const idPattern = "/{id:[0-9]+}"

// wireUser configures the user CRUD routes
func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.List)
		r.Post("/", userHandler.Create)
		r.Get(idPattern, userHandler.Get)
		r.Patch(idPattern, userHandler.Update)
		r.Delete(idPattern, userHandler.Delete)
	})
}
