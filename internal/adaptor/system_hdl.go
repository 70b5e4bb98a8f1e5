package adaptor

import (
	"context"
	"net/http"
	"time"

	"sendit/internal/usecase"
	"sendit/pkg/utils"

	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

type SystemHandler struct {
	users usecase.UserService
	db    Pinger
	log   *zap.Logger
}

func NewSystemHandler(users usecase.UserService, db Pinger, log *zap.Logger) *SystemHandler {
	return &SystemHandler{
		users: users,
		db:    db,
		log:   log.With(zap.String("handler", "system")),
	}
}

// Index handles GET /
func (h *SystemHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("<h1>Welcome to Sendit App</h1>"))
}

// Health handles GET /health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.log.Error("Health check failed", zap.Error(err))
		utils.ResponseUnavailable(w, "Database unavailable")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// Me handles GET /me (requires a bearer access token)
func (h *SystemHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get current user", "User")
		return
	}

	utils.ResponseSuccess(w, user)
}
