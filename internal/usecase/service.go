package usecase

import (
	"sendit/internal/data/repository"
	"sendit/pkg/utils"

	"go.uber.org/zap"
)

// TokenIssuer is satisfied by *utils.TokenIssuer
type TokenIssuer interface {
	Issue(userID int64) (*utils.TokenPair, error)
	Parse(tokenString string, expected utils.TokenType) (*utils.Claims, error)
}

type Service struct {
	Auth     AuthService
	User     UserService
	Order    OrderService
	Feedback FeedbackService
	Parcel   ParcelService
	Profile  ProfileService
}

func NewService(repo *repository.Repository, tokens TokenIssuer, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo.User, tokens, log),
		User:     NewUserService(repo.User, log),
		Order:    NewOrderService(repo.Order, log),
		Feedback: NewFeedbackService(repo.Feedback, log),
		Parcel:   NewParcelService(repo.Parcel, log),
		Profile:  NewProfileService(repo.Profile, log),
	}
}
