package wire

import (
	"sendit/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFeedback(r chi.Router, feedbackHandler *adaptor.FeedbackHandler) {
	r.Route("/feedback", func(r chi.Router) {
		r.Get("/", feedbackHandler.List)
		r.Post("/", feedbackHandler.Create)
		r.Get(idPattern, feedbackHandler.Get)
		r.Patch(idPattern, feedbackHandler.Update)
		r.Delete(idPattern, feedbackHandler.Delete)
	})
}
