package wire

import (
	"fmt"
	"net/http"

	"sendit/internal/adaptor"
	"sendit/internal/data/repository"
	"sendit/internal/usecase"
	"sendit/pkg/database"
	"sendit/pkg/middleware"
	"sendit/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled HTTP router
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes on top of an open database.
func Wiring(db *database.DB, config *utils.Config, logger *zap.Logger) (*App, error) {
	tokens, err := utils.NewTokenIssuer(config.JWT)
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}

	repo := repository.NewRepository(db, logger)
	service := usecase.NewService(repo, tokens, logger)
	handler := adaptor.NewHandler(service, db, logger)

	return &App{
		Router: setupRouter(handler, tokens, logger),
	}, nil
}

func setupRouter(handler *adaptor.Handler, tokens middleware.TokenParser, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// request ID first so every later middleware can log it
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	r.Get("/", handler.System.Index)
	r.Get("/health", handler.System.Health)

	wireAuth(r, handler.Auth, handler.System, tokens, logger)
	wireUser(r, handler.User)
	wireOrder(r, handler.Order)
	wireFeedback(r, handler.Feedback)
	wireParcel(r, handler.Parcel)
	wireProfile(r, handler.Profile)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		utils.ResponseNotFound(w, "Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		utils.ResponseError(w, http.StatusMethodNotAllowed, "Method not allowed", http.StatusText(http.StatusMethodNotAllowed))
	})

	return r
}
