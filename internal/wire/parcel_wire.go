package wire

import (
	"sendit/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireParcel(r chi.Router, parcelHandler *adaptor.ParcelHandler) {
	r.Route("/parcels", func(r chi.Router) {
		r.Get("/", parcelHandler.List)
		r.Post("/", parcelHandler.Create)
		r.Get(idPattern, parcelHandler.Get)
		r.Patch(idPattern, parcelHandler.Update)
		r.Delete(idPattern, parcelHandler.Delete)
	})
}
