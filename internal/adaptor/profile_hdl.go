package adaptor

import (
	"net/http"

	"sendit/internal/dto/request"
	"sendit/internal/usecase"
	"sendit/pkg/utils"

	"go.uber.org/zap"
)

type ProfileHandler struct {
	service usecase.ProfileService
	log     *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log.With(zap.String("handler", "profile")),
	}
}

// List handles GET /profiles
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list profiles", "Profile")
		return
	}

	utils.ResponseSuccess(w, profiles)
}

// Create handles POST /profiles
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return
	}

	profile, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create profile", "Profile")
		return
	}

	utils.ResponseCreated(w, profile)
}

// Get handles GET /profiles/{id}
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.ResponseNotFound(w, "Profile not found")
		return
	}

	profile, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get profile", "Profile")
		return
	}

	utils.ResponseSuccess(w, profile)
}

// Update handles PATCH /profiles/{id}
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.ResponseNotFound(w, "Profile not found")
		return
	}

	var req request.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return
	}

	profile, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update profile", "Profile")
		return
	}

	utils.ResponseSuccess(w, profile)
}

// Delete handles DELETE /profiles/{id}
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.ResponseNotFound(w, "Profile not found")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete profile", "Profile")
		return
	}

	h.log.Info("Profile deleted", zap.Int64("profile_id", id))
	utils.ResponseMessage(w, "Profile deleted")
}
