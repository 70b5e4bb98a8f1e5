package wire

import (
	"sendit/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireOrder(r chi.Router, orderHandler *adaptor.OrderHandler) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", orderHandler.List)
		r.Post("/", orderHandler.Create)
		r.Get(idPattern, orderHandler.Get)
		r.Patch(idPattern, orderHandler.Update)
		r.Delete(idPattern, orderHandler.Delete)
	})
}
