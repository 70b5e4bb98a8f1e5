package adaptor

import (
	"net/http"

	"sendit/internal/dto/request"
	"sendit/internal/usecase"
	"sendit/pkg/utils"

	"go.uber.org/zap"
)

type ParcelHandler struct {
	service usecase.ParcelService
	log     *zap.Logger
}

func NewParcelHandler(service usecase.ParcelService, log *zap.Logger) *ParcelHandler {
	return &ParcelHandler{
		service: service,
		log:     log.With(zap.String("handler", "parcel")),
	}
}

// List handles GET /parcels
func (h *ParcelHandler) List(w http.ResponseWriter, r *http.Request) {
	parcels, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list parcels", "Parcel")
		return
	}

	utils.ResponseSuccess(w, parcels)
}

// Create handles POST /parcels
func (h *ParcelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateParcelRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return
	}

	parcel, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create parcel", "Parcel")
		return
	}

	utils.ResponseCreated(w, parcel)
}

// Get handles GET /parcels/{id}
func (h *ParcelHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.ResponseNotFound(w, "Parcel not found")
		return
	}

	parcel, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get parcel", "Parcel")
		return
	}

	utils.ResponseSuccess(w, parcel)
}

// Update handles PATCH /parcels/{id}
func (h *ParcelHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.ResponseNotFound(w, "Parcel not found")
		return
	}

	var req request.UpdateParcelRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return
	}

	parcel, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update parcel", "Parcel")
		return
	}

	utils.ResponseSuccess(w, parcel)
}

// Delete handles DELETE /parcels/{id}
func (h *ParcelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.ResponseNotFound(w, "Parcel not found")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete parcel", "Parcel")
		return
	}

	h.log.Info("Parcel deleted", zap.Int64("parcel_id", id))
	utils.ResponseMessage(w, "Parcel deleted")
}
