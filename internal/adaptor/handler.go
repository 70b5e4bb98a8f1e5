package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"sendit/internal/usecase"
	"sendit/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Order    *OrderHandler
	Feedback *FeedbackHandler
	Parcel   *ParcelHandler
	Profile  *ProfileHandler
	System   *SystemHandler
}

func NewHandler(service *usecase.Service, db Pinger, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Order:    NewOrderHandler(service.Order, log),
		Feedback: NewFeedbackHandler(service.Feedback, log),
		Parcel:   NewParcelHandler(service.Parcel, log),
		Profile:  NewProfileHandler(service.Profile, log),
		System:   NewSystemHandler(service.User, db, log),
	}
}

// decodeJSON rejects bodies with fields the target struct does not declare.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// idParam reads the {id} route parameter
func idParam(r *http.Request) (int64, error) {
	return utils.ParseID(chi.URLParam(r, "id"))
}

// handleServiceError maps usecase errors to HTTP responses.
// resource is used in the 404 message, e.g. "User not found".
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation, resource string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" failed - validation error", zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, fmt.Sprintf("%s not found", resource))

	case errors.Is(err, usecase.ErrInvalidReference):
		log.Warn(operation+" failed - invalid reference", zap.Error(err))
		utils.ResponseBadRequest(w, "Referenced record does not exist", err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials")
		utils.ResponseUnauthorized(w, "Password is incorrect!")

	case errors.Is(err, usecase.ErrInvalidToken):
		log.Warn(operation+" failed - invalid token", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid or expired token")

	default:
		log.Error(operation+" failed - internal error", zap.Error(err))
		utils.ResponseInternalError(w, "An error occurred while processing the request")
	}
}
