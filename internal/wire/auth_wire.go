package wire

import (
	"sendit/internal/adaptor"
	"sendit/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	systemHandler *adaptor.SystemHandler,
	tokens middleware.TokenParser,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/signup", authHandler.Signup)
	r.Post("/login", authHandler.Login)
	r.Post("/refresh", authHandler.Refresh)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthJWT(tokens, log)).Get("/me", systemHandler.Me)
}
