package wire

import (
	"sendit/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireProfile(r chi.Router, profileHandler *adaptor.ProfileHandler) {
	r.Route("/profiles", func(r chi.Router) {
		r.Get("/", profileHandler.List)
		r.Post("/", profileHandler.Create)
		r.Get(idPattern, profileHandler.Get)
		r.Patch(idPattern, profileHandler.Update)
		r.Delete(idPattern, profileHandler.Delete)
	})
}
