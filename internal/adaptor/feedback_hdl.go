package adaptor

import (
	"net/http"

	"sendit/internal/dto/request"
	"sendit/internal/usecase"
	"sendit/pkg/utils"

	"go.uber.org/zap"
)

type FeedbackHandler struct {
	service usecase.FeedbackService
	log     *zap.Logger
}

func NewFeedbackHandler(service usecase.FeedbackService, log *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		service: service,
		log:     log.With(zap.String("handler", "feedback")),
	}
}

// List handles GET /feedback
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	feedback, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list feedback", "Feedback")
		return
	}

	utils.ResponseSuccess(w, feedback)
}

// Create handles POST /feedback
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFeedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return
	}

	feedback, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create feedback", "Feedback")
		return
	}

	utils.ResponseCreated(w, feedback)
}

// Get handles GET /feedback/{id}
func (h *FeedbackHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.ResponseNotFound(w, "Feedback not found")
		return
	}

	feedback, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get feedback", "Feedback")
		return
	}

	utils.ResponseSuccess(w, feedback)
}

// Update handles PATCH /feedback/{id}
func (h *FeedbackHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.ResponseNotFound(w, "Feedback not found")
		return
	}

	var req request.UpdateFeedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return
	}

	feedback, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update feedback", "Feedback")
		return
	}

	utils.ResponseSuccess(w, feedback)
}

// Delete handles DELETE /feedback/{id}
func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.ResponseNotFound(w, "Feedback not found")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete feedback", "Feedback")
		return
	}

	h.log.Info("Feedback deleted", zap.Int64("feedback_id", id))
	utils.ResponseMessage(w, "Feedback deleted")
}
