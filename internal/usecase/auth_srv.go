package usecase

import (
	"context"
	"errors"
	"fmt"

	"sendit/internal/data/entity"
	"sendit/internal/data/repository"
	"sendit/internal/dto/request"
	"sendit/internal/dto/response"
	"sendit/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) error
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Refresh(ctx context.Context, req *request.RefreshRequest) (*response.LoginResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenIssuer, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) error {
	// 1. Validate input
	if err := validate(req); err != nil {
		s.log.Warn("Signup validation failed", zap.Error(err))
		return err
	}

	// 2. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	role := entity.RoleCustomer
	if req.Role != "" {
		role = entity.UserRole(req.Role)
	}

	// 3. Save user; the repository rolls the transaction back on failure
	user := &entity.User{
		Email:        req.Email,
		Username:     req.Username,
		Role:         role,
		PasswordHash: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		s.log.Error("Error creating user", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("signup: %w", err)
	}

	s.log.Info("User created successfully",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))
	return nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Login validation failed", zap.Error(err))
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		s.log.Info("Login attempt with non-existent email", zap.String("email", req.Email))
		return nil, fmt.Errorf("user %s: %w", req.Email, ErrNotFound)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Info("Failed password attempt", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	pair, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.log.Error("Error generating tokens", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("issue tokens: %w", err)
	}

	s.log.Info("Successful login", zap.String("email", req.Email))
	return &response.LoginResponse{Token: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

// Refresh trades a valid refresh token for a new pair.
// The token's user must still exist.
func (s *authService) Refresh(ctx context.Context, req *request.RefreshRequest) (*response.LoginResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	claims, err := s.tokens.Parse(req.RefreshToken, utils.RefreshToken)
	if err != nil {
		s.log.Warn("Rejected refresh token", zap.Error(err))
		if errors.Is(err, utils.ErrInvalidToken) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("parse refresh token: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, claims.Identity)
	if err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}
	if user == nil {
		s.log.Warn("Refresh token for deleted user", zap.Int64("user_id", claims.Identity))
		return nil, ErrInvalidToken
	}

	pair, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.log.Error("Error generating tokens", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("issue tokens: %w", err)
	}

	return &response.LoginResponse{Token: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}
